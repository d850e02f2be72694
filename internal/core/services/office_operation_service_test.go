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

type OfficeOperationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOfficeOperationRepository
	service  portssvc.OfficeOperationSvc
}

func (suite *OfficeOperationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOfficeOperationRepository)
	suite.service = services.NewOfficeOperationService(suite.mockRepo)
}

func (suite *OfficeOperationServiceTestSuite) TestCreateOfficeOperation_ZeroAmountAllowed() {
	ctx := context.Background()
	req := dto.CreateOfficeOperationRequest{
		Date:          time.Now().Add(-time.Hour),
		Amount:        dec("0"),
		Type:          domain.CategoryExpense,
		PaymentMethod: domain.PaymentCash,
	}

	suite.mockRepo.On("SaveOfficeOperation", ctx, mock.MatchedBy(func(op domain.OfficeOperation) bool {
		return op.Amount.IsZero() && op.Type == domain.CategoryExpense
	})).Return(nil).Once()

	op, err := suite.service.CreateOfficeOperation(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(op.Amount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OfficeOperationServiceTestSuite) TestCreateOfficeOperation_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateOfficeOperationRequest{
		Date:          time.Now().Add(-time.Hour),
		Amount:        dec("-5"),
		Type:          domain.CategoryRevenue,
		PaymentMethod: domain.PaymentCash,
	}

	op, err := suite.service.CreateOfficeOperation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveOfficeOperation")
}

func (suite *OfficeOperationServiceTestSuite) TestUpdateOfficeOperation_ZeroAmountAllowed() {
	ctx := context.Background()
	opID := uuid.NewString()
	stored := &domain.OfficeOperation{
		OfficeOperationID: opID,
		Amount:            dec("150"),
		Type:              domain.CategoryRevenue,
	}
	zero := dec("0")

	suite.mockRepo.On("FindOfficeOperationByID", ctx, opID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateOfficeOperation", ctx, mock.MatchedBy(func(op domain.OfficeOperation) bool {
		return op.Amount.IsZero()
	})).Return(nil).Once()

	op, err := suite.service.UpdateOfficeOperation(ctx, opID, dto.UpdateOfficeOperationRequest{Amount: &zero}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(op.Amount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OfficeOperationServiceTestSuite) TestUpdateOfficeOperation_NegativeAmountRejected() {
	ctx := context.Background()
	opID := uuid.NewString()
	stored := &domain.OfficeOperation{OfficeOperationID: opID, Amount: dec("150")}
	negative := dec("-1")

	suite.mockRepo.On("FindOfficeOperationByID", ctx, opID).Return(stored, nil).Once()

	op, err := suite.service.UpdateOfficeOperation(ctx, opID, dto.UpdateOfficeOperationRequest{Amount: &negative}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateOfficeOperation")
}

func TestOfficeOperationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OfficeOperationServiceTestSuite))
}
