package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/core/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaudizationServiceTestSuite struct {
	suite.Suite
	mockSaudizationRepo *MockSaudizationRepository
	mockOrgRepo         *MockOrganizationRepository
	service             portssvc.SaudizationSvc
}

func (suite *SaudizationServiceTestSuite) SetupTest() {
	suite.mockSaudizationRepo = new(MockSaudizationRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewSaudizationService(suite.mockSaudizationRepo, suite.mockOrgRepo)
}

func (suite *SaudizationServiceTestSuite) TestCreateSaudization_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	req := dto.CreateSaudizationRequest{
		EmployeeName:      "Fahad",
		WorkPermitStatus:  domain.WorkPermitValid,
		DeportationStatus: domain.DeportationNone,
	}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrganizationID: orgID}, nil).Once()
	suite.mockSaudizationRepo.On("SaveSaudization", ctx, mock.MatchedBy(func(r domain.Saudization) bool {
		return r.OrganizationID == orgID && r.EmployeeName == "Fahad"
	})).Return(nil).Once()

	record, err := suite.service.CreateSaudization(ctx, orgID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(record.SaudizationID)
	suite.mockSaudizationRepo.AssertExpectations(suite.T())
}

func (suite *SaudizationServiceTestSuite) TestCreateSaudization_DeportedWithoutDate() {
	req := dto.CreateSaudizationRequest{
		EmployeeName:      "Fahad",
		WorkPermitStatus:  domain.WorkPermitExpired,
		DeportationStatus: domain.DeportationDeported,
	}

	record, err := suite.service.CreateSaudization(context.Background(), uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaudizationRepo.AssertNotCalled(suite.T(), "SaveSaudization")
}

func (suite *SaudizationServiceTestSuite) TestUpdateSaudization_DateClearedWhenNotDeported() {
	ctx := context.Background()
	recordID := uuid.NewString()
	deportedAt := time.Now().Add(-48 * time.Hour)
	stored := &domain.Saudization{
		SaudizationID:     recordID,
		EmployeeName:      "Fahad",
		WorkPermitStatus:  domain.WorkPermitExpired,
		DeportationStatus: domain.DeportationDeported,
		DeportationDate:   &deportedAt,
	}
	newStatus := domain.DeportationInProgress

	suite.mockSaudizationRepo.On("FindSaudizationByID", ctx, recordID).Return(stored, nil).Once()
	suite.mockSaudizationRepo.On("UpdateSaudization", ctx, mock.MatchedBy(func(r domain.Saudization) bool {
		return r.DeportationStatus == domain.DeportationInProgress && r.DeportationDate == nil
	})).Return(nil).Once()

	record, err := suite.service.UpdateSaudization(ctx, recordID, dto.UpdateSaudizationRequest{DeportationStatus: &newStatus}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(record.DeportationDate)
	suite.mockSaudizationRepo.AssertExpectations(suite.T())
}

func (suite *SaudizationServiceTestSuite) TestUpdateSaudization_DeportedRequiresDateOnResultingState() {
	ctx := context.Background()
	recordID := uuid.NewString()
	stored := &domain.Saudization{
		SaudizationID:     recordID,
		DeportationStatus: domain.DeportationNone,
	}
	newStatus := domain.DeportationDeported

	suite.mockSaudizationRepo.On("FindSaudizationByID", ctx, recordID).Return(stored, nil).Once()

	record, err := suite.service.UpdateSaudization(ctx, recordID, dto.UpdateSaudizationRequest{DeportationStatus: &newStatus}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaudizationRepo.AssertNotCalled(suite.T(), "UpdateSaudization")
}

func TestSaudizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaudizationServiceTestSuite))
}
