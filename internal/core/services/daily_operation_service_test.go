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

type DailyOperationServiceTestSuite struct {
	suite.Suite
	mockDailyOpRepo  *MockDailyOperationRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.DailyOperationSvc
}

func (suite *DailyOperationServiceTestSuite) SetupTest() {
	suite.mockDailyOpRepo = new(MockDailyOperationRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewDailyOperationService(suite.mockDailyOpRepo, suite.mockEmployeeRepo)
}

func (suite *DailyOperationServiceTestSuite) validRequest(orgID, employeeID string) dto.CreateDailyOperationRequest {
	return dto.CreateDailyOperationRequest{
		OrganizationID: orgID,
		EmployeeID:     employeeID,
		Date:           time.Now().Add(-24 * time.Hour),
		Amount:         dec("150"),
		Category:       domain.CategoryRevenue,
		PaymentMethod:  domain.PaymentCash,
	}
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(&domain.Employee{EmployeeID: employeeID, OrganizationID: orgID}, nil).Once()
	suite.mockDailyOpRepo.On("SaveDailyOperation", ctx, mock.MatchedBy(func(op domain.DailyOperation) bool {
		return op.EmployeeID == employeeID && op.OrganizationID == orgID && op.Category == domain.CategoryRevenue
	})).Return(nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.validRequest(orgID, employeeID), uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(op.DailyOperationID)
	suite.mockDailyOpRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_EmployeeInDifferentOrganization() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).
		Return(&domain.Employee{EmployeeID: employeeID, OrganizationID: uuid.NewString()}, nil).Once()

	op, err := suite.service.CreateDailyOperation(ctx, suite.validRequest(uuid.NewString(), employeeID), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDailyOpRepo.AssertNotCalled(suite.T(), "SaveDailyOperation")
}

func (suite *DailyOperationServiceTestSuite) TestCreateDailyOperation_NonPositiveAmount() {
	req := suite.validRequest(uuid.NewString(), uuid.NewString())
	req.Amount = dec("0")

	op, err := suite.service.CreateDailyOperation(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(op)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "FindEmployeeByID")
}

func (suite *DailyOperationServiceTestSuite) TestUpdateDailyOperation_CategoryFlip() {
	ctx := context.Background()
	opID := uuid.NewString()
	stored := &domain.DailyOperation{
		DailyOperationID: opID,
		Amount:           dec("100"),
		Category:         domain.CategoryRevenue,
		PaymentMethod:    domain.PaymentCash,
	}
	newCategory := domain.CategoryExpense

	suite.mockDailyOpRepo.On("FindDailyOperationByID", ctx, opID).Return(stored, nil).Once()
	suite.mockDailyOpRepo.On("UpdateDailyOperation", ctx, mock.MatchedBy(func(op domain.DailyOperation) bool {
		return op.Category == domain.CategoryExpense && op.Amount.Equal(dec("100"))
	})).Return(nil).Once()

	op, err := suite.service.UpdateDailyOperation(ctx, opID, dto.UpdateDailyOperationRequest{Category: &newCategory}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryExpense, op.Category)
	suite.mockDailyOpRepo.AssertExpectations(suite.T())
}

func (suite *DailyOperationServiceTestSuite) TestDeleteDailyOperation_NotFound() {
	ctx := context.Background()
	opID := uuid.NewString()

	suite.mockDailyOpRepo.On("FindDailyOperationByID", ctx, opID).Return(nil, nil).Once()

	err := suite.service.DeleteDailyOperation(ctx, opID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDailyOpRepo.AssertNotCalled(suite.T(), "DeleteDailyOperation")
}

func (suite *DailyOperationServiceTestSuite) TestListDailyOperationsByOrganization() {
	ctx := context.Background()
	orgID := uuid.NewString()
	ops := []domain.DailyOperation{{DailyOperationID: uuid.NewString(), OrganizationID: orgID}}

	suite.mockDailyOpRepo.On("ListDailyOperationsByOrganization", ctx, orgID, 10, 0).
		Return(ops, int64(1), nil).Once()

	page, total, err := suite.service.ListDailyOperationsByOrganization(ctx, orgID, 10, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(page, 1)
}

func TestDailyOperationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DailyOperationServiceTestSuite))
}
