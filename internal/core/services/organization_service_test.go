package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/core/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockOrgRepo       *MockOrganizationRepository
	mockEmployeeRepo  *MockEmployeeRepository
	mockDailyOpRepo   *MockDailyOperationRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.OrganizationSvc
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDailyOpRepo = new(MockDailyOperationRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockEmployeeRepo,
		suite.mockDailyOpRepo,
		suite.mockReportingRepo,
	)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateOrganizationRequest{
		OwnerName:       "Al Rashid Trading",
		OwnerNationalID: "1045678901",
		SponsorAmount:   dec("2000"),
	}

	suite.mockOrgRepo.On("SaveOrganization", ctx, mock.MatchedBy(func(org domain.Organization) bool {
		return org.OwnerName == req.OwnerName && org.CreatedBy == creatorID && org.OrganizationID != ""
	})).Return(nil).Once()

	org, err := suite.service.CreateOrganization(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.NotEmpty(org.OrganizationID)
	suite.Equal(creatorID, org.LastUpdatedBy)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_EnrichedWithTransferTotal() {
	ctx := context.Background()
	orgID := uuid.NewString()
	stored := &domain.Organization{OrganizationID: orgID, OwnerName: "Al Rashid Trading"}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(stored, nil).Once()
	suite.mockReportingRepo.On("TransferredTotals", ctx, []string{orgID}).
		Return(map[string]decimal.Decimal{orgID: dec("500")}, nil).Once()

	org, err := suite.service.GetOrganization(ctx, orgID)

	suite.Require().NoError(err)
	suite.Equal("Al Rashid Trading", org.OwnerName)
	suite.True(org.TransferredToSponsorTotal.Equal(dec("500")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_NoTransfersYieldsZero() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrganizationID: orgID}, nil).Once()
	// No row for the organization in the grouped result.
	suite.mockReportingRepo.On("TransferredTotals", ctx, []string{orgID}).
		Return(map[string]decimal.Decimal{}, nil).Once()

	org, err := suite.service.GetOrganization(ctx, orgID)

	suite.Require().NoError(err)
	suite.True(org.TransferredToSponsorTotal.IsZero())
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_NotFound() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(nil, nil).Once()

	org, err := suite.service.GetOrganization(ctx, orgID)

	suite.Require().Error(err)
	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganization_InvalidIDFormat() {
	org, err := suite.service.GetOrganization(context.Background(), "12345")

	suite.Require().Error(err)
	suite.Nil(org)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "FindOrganizationByID")
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_BatchEnrichment() {
	ctx := context.Background()
	org1 := domain.Organization{OrganizationID: uuid.NewString()}
	org2 := domain.Organization{OrganizationID: uuid.NewString()}

	suite.mockOrgRepo.On("ListOrganizations", ctx, portsrepo.OrganizationListFilter{Name: "rashid", Limit: 10, Offset: 0}).
		Return([]domain.Organization{org1, org2}, int64(2), nil).Once()
	suite.mockReportingRepo.On("TransferredTotals", ctx, []string{org1.OrganizationID, org2.OrganizationID}).
		Return(map[string]decimal.Decimal{org1.OrganizationID: dec("300")}, nil).Once()

	orgs, total, err := suite.service.ListOrganizations(ctx, "rashid", 10, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(orgs, 2)
	suite.True(orgs[0].TransferredToSponsorTotal.Equal(dec("300")))
	suite.True(orgs[1].TransferredToSponsorTotal.IsZero())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestListOrganizations_EmptyPageSkipsEnrichment() {
	ctx := context.Background()

	suite.mockOrgRepo.On("ListOrganizations", ctx, mock.AnythingOfType("repositories.OrganizationListFilter")).
		Return([]domain.Organization{}, int64(0), nil).Once()

	orgs, total, err := suite.service.ListOrganizations(ctx, "", 10, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(orgs)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "TransferredTotals")
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_Cascades() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockOrgRepo.On("DeleteOrganizationCascade", ctx, orgID).Return(nil).Once()

	err := suite.service.DeleteOrganization(ctx, orgID)

	suite.Require().NoError(err)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization_NotFound() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockOrgRepo.On("DeleteOrganizationCascade", ctx, orgID).
		Return(apperrors.NewNotFoundError("organization not found")).Once()

	err := suite.service.DeleteOrganization(ctx, orgID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization_PartialPatch() {
	ctx := context.Background()
	orgID := uuid.NewString()
	updaterID := uuid.NewString()
	stored := &domain.Organization{
		OrganizationID:  orgID,
		OwnerName:       "Old Name",
		OwnerNationalID: "1045678901",
		SponsorAmount:   dec("2000"),
	}
	newName := "New Name"

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(stored, nil).Once()
	suite.mockOrgRepo.On("UpdateOrganization", ctx, mock.MatchedBy(func(org domain.Organization) bool {
		return org.OwnerName == newName &&
			org.OwnerNationalID == "1045678901" &&
			org.SponsorAmount.Equal(dec("2000")) &&
			org.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	org, err := suite.service.UpdateOrganization(ctx, orgID, dto.UpdateOrganizationRequest{OwnerName: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, org.OwnerName)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_SponsorAmountOutOfRange() {
	ctx := context.Background()

	for _, amount := range []string{"-1", "10000001"} {
		_, err := suite.service.CreateOrganization(ctx, dto.CreateOrganizationRequest{
			OwnerName:     "Owner",
			SponsorAmount: dec(amount),
		}, uuid.NewString())

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockOrgRepo.AssertNotCalled(suite.T(), "SaveOrganization", mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestDailyOperationTotals_ScopedToOrganization() {
	ctx := context.Background()
	orgID := uuid.NewString()

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrganizationID: orgID}, nil).Once()
	suite.mockReportingRepo.On("DailyOperationSummary", ctx, domain.DateWindow{}, &orgID).
		Return(domain.FinancialSummary{TotalRevenue: dec("600"), TotalExpenses: dec("100"), NetAmount: dec("500")}, nil).Once()

	summary, err := suite.service.DailyOperationTotals(ctx, orgID)

	suite.Require().NoError(err)
	suite.True(summary.NetAmount.Equal(dec("500")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
