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

type TransferServiceTestSuite struct {
	suite.Suite
	mockTransferRepo *MockTransferRepository
	mockOrgRepo      *MockOrganizationRepository
	service          portssvc.TransferSvc
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockTransferRepo = new(MockTransferRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewTransferService(suite.mockTransferRepo, suite.mockOrgRepo)
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_ZeroAmountAllowed() {
	ctx := context.Background()
	orgID := uuid.NewString()
	req := dto.CreateTransferRequest{
		Date:   time.Now().Add(-time.Hour),
		Amount: dec("0"),
	}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrganizationID: orgID}, nil).Once()
	suite.mockTransferRepo.On("SaveTransfer", ctx, mock.MatchedBy(func(t domain.Transfer) bool {
		return t.Amount.IsZero() && t.OrganizationID == orgID
	})).Return(nil).Once()

	transfer, err := suite.service.CreateTransfer(ctx, orgID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(transfer.Amount.IsZero())
	suite.mockTransferRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		Date:   time.Now().Add(-time.Hour),
		Amount: dec("-100"),
	}

	transfer, err := suite.service.CreateTransfer(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "SaveTransfer")
}

func (suite *TransferServiceTestSuite) TestUpdateTransfer_NegativeAmountRejected() {
	ctx := context.Background()
	transferID := uuid.NewString()
	stored := &domain.Transfer{TransferID: transferID, Amount: dec("200")}
	negative := dec("-1")

	suite.mockTransferRepo.On("FindTransferByID", ctx, transferID).Return(stored, nil).Once()

	transfer, err := suite.service.UpdateTransfer(ctx, transferID, dto.UpdateTransferRequest{Amount: &negative}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransferRepo.AssertNotCalled(suite.T(), "UpdateTransfer")
}

func (suite *TransferServiceTestSuite) TestCreateTransfer_UnknownOrganization() {
	ctx := context.Background()
	orgID := uuid.NewString()
	req := dto.CreateTransferRequest{
		Date:   time.Now().Add(-time.Hour),
		Amount: dec("50"),
	}

	suite.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(nil, nil).Once()

	transfer, err := suite.service.CreateTransfer(ctx, orgID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(transfer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
