package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
	"github.com/maktab-hr/manpower_office_app/internal/handlers"
	"github.com/maktab-hr/manpower_office_app/internal/platform/config"
	"github.com/maktab-hr/manpower_office_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.EmployeeWithTotals, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeWithTotals), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.EmployeeWithTotals, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EmployeeWithTotals), args.Get(1).(int64), args.Error(2)
}

var _ portssvc.EmployeeSvc = (*MockEmployeeService)(nil)

// --- Test Suite ---
type EmployeeHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockEmployeeService *MockEmployeeService
	jwtSecret           string
}

func (suite *EmployeeHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, _, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "moa-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockEmployeeService = new(MockEmployeeService)

	suite.Require().NoError(handlers.RegisterCustomValidators())

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keep swagger off the test router
	}
	services := &portssvc.ServiceContainer{Employee: suite.mockEmployeeService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *EmployeeHandlerTestSuite) doRequest(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_Success() {
	userID := uuid.NewString()
	employeeID := uuid.NewString()

	expectedParams := dto.ListEmployeesParams{
		ListParams: dto.ListParams{Page: 1, Limit: 10},
		Search:     "ahmed",
	}
	rows := []domain.EmployeeWithTotals{
		{
			Employee: domain.Employee{
				EmployeeID:      employeeID,
				OrganizationID:  uuid.NewString(),
				Type:            domain.EmployeeTypeEmployee,
				Name:            "Ahmed",
				RequestedAmount: decimal.NewFromInt(1000),
			},
			Totals: domain.EmployeeTotals{
				TotalRevenue:     decimal.NewFromInt(400),
				TotalExpenses:    decimal.NewFromInt(100),
				RevenueRemaining: decimal.NewFromInt(300),
				Remaining:        decimal.NewFromInt(600),
			},
		},
	}
	suite.mockEmployeeService.On("ListEmployees", mock.Anything, expectedParams).Return(rows, int64(1), nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/employees?search=ahmed", suite.generateTestToken(userID, domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Status     string                 `json:"status"`
		Data       []dto.EmployeeResponse `json:"data"`
		Pagination *dto.Pagination        `json:"pagination"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.StatusSuccess, resp.Status)
	suite.Require().Len(resp.Data, 1)
	suite.Equal(employeeID, resp.Data[0].EmployeeID)
	suite.True(resp.Data[0].Remaining.Equal(decimal.NewFromInt(600)))
	suite.Require().NotNil(resp.Pagination)
	suite.Equal(int64(1), resp.Pagination.Total)

	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_NonNumericPagingFallsBackToDefaults() {
	expectedParams := dto.ListEmployeesParams{
		ListParams: dto.ListParams{Page: 1, Limit: 10},
		Search:     "ahmed",
	}
	suite.mockEmployeeService.On("ListEmployees", mock.Anything, expectedParams).
		Return([]domain.EmployeeWithTotals{}, int64(0), nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/employees?page=abc&limit=-5&search=ahmed",
		suite.generateTestToken(uuid.NewString(), domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestListEmployees_Unauthenticated() {
	w := suite.doRequest(http.MethodGet, "/api/v1/employees", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFound() {
	employeeID := uuid.NewString()
	suite.mockEmployeeService.On("GetEmployee", mock.Anything, employeeID).
		Return(nil, apperrors.NewNotFoundError("employee not found"))

	w := suite.doRequest(http.MethodGet, "/api/v1/employees/"+employeeID, suite.generateTestToken(uuid.NewString(), domain.RoleUser))

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.StatusFail, resp.Status)
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_ForbiddenForRegularUser() {
	employeeID := uuid.NewString()

	w := suite.doRequest(http.MethodDelete, "/api/v1/employees/"+employeeID, suite.generateTestToken(uuid.NewString(), domain.RoleUser))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "DeleteEmployee", mock.Anything, employeeID)
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_AdminSucceeds() {
	employeeID := uuid.NewString()
	suite.mockEmployeeService.On("DeleteEmployee", mock.Anything, employeeID).Return(nil)

	w := suite.doRequest(http.MethodDelete, "/api/v1/employees/"+employeeID, suite.generateTestToken(uuid.NewString(), domain.RoleAdmin))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestDeleteEmployee_ModeratorForbidden() {
	employeeID := uuid.NewString()

	w := suite.doRequest(http.MethodDelete, "/api/v1/employees/"+employeeID, suite.generateTestToken(uuid.NewString(), domain.RoleModerator))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "DeleteEmployee", mock.Anything, employeeID)
}

func TestEmployeeHandler(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
