package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockOrgRepo       *MockOrganizationRepository
	mockEmployeeRepo  *MockEmployeeRepository
	mockDailyOpRepo   *MockDailyOperationRepository
	mockOfficeOpRepo  *MockOfficeOperationRepository
	mockUserRepo      *MockUserRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockDailyOpRepo = new(MockDailyOperationRepository)
	suite.mockOfficeOpRepo = new(MockOfficeOperationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewDashboardService(portsrepo.RepositoryProvider{
		OrganizationRepo:    suite.mockOrgRepo,
		EmployeeRepo:        suite.mockEmployeeRepo,
		DailyOperationRepo:  suite.mockDailyOpRepo,
		OfficeOperationRepo: suite.mockOfficeOpRepo,
		UserRepo:            suite.mockUserRepo,
		ReportingRepo:       suite.mockReportingRepo,
	})
}

func (suite *DashboardServiceTestSuite) expectCounts(orgCount, employeeCount int64) {
	ctx := mock.Anything
	suite.mockOrgRepo.On("CountOrganizations", ctx).Return(orgCount, nil).Once()
	suite.mockEmployeeRepo.On("CountEmployeesByType", ctx, domain.EmployeeTypeEmployee).Return(employeeCount, nil).Once()
	suite.mockEmployeeRepo.On("CountEmployeesByType", ctx, domain.EmployeeTypeVacancy).Return(int64(2), nil).Once()
	suite.mockDailyOpRepo.On("CountDailyOperations", ctx).Return(int64(40), nil).Once()
	suite.mockOfficeOpRepo.On("CountOfficeOperations", ctx).Return(int64(15), nil).Once()
	suite.mockUserRepo.On("CountActiveUsers", ctx).Return(int64(3), nil).Once()
	suite.mockEmployeeRepo.On("CountExpiredPermits", ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once()
	suite.mockEmployeeRepo.On("CountExpiringPermits", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once()
	suite.mockEmployeeRepo.On("SumRequestedAmount", ctx).Return(dec("9000"), nil).Once()
	suite.mockReportingRepo.On("EmployeeOperationsSummary", ctx).
		Return(domain.FinancialSummary{TotalRevenue: dec("4000"), TotalExpenses: dec("1000"), NetAmount: dec("3000")}, nil).Once()
}

func (suite *DashboardServiceTestSuite) TestStats_Unwindowed() {
	ctx := context.Background()
	suite.expectCounts(10, 25)

	unbounded := domain.DateWindow{}
	suite.mockReportingRepo.On("OfficeOperationSummary", mock.Anything, unbounded).
		Return(domain.FinancialSummary{TotalRevenue: dec("100"), TotalExpenses: dec("30"), NetAmount: dec("70")}, nil).Once()
	suite.mockReportingRepo.On("DailyOperationSummary", mock.Anything, unbounded, (*string)(nil)).
		Return(domain.FinancialSummary{TotalRevenue: dec("500"), TotalExpenses: dec("200"), NetAmount: dec("300")}, nil).Once()

	stats, err := suite.service.Stats(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(10), stats.OrganizationCount)
	suite.Equal(int64(25), stats.EmployeeCount)
	suite.Equal(int64(2), stats.VacancyCount)
	suite.Equal(int64(15), stats.AvailableSlots, "4 seats per organization minus employees")
	suite.Equal(int64(40), stats.DailyOperationCount)
	suite.Equal(int64(15), stats.OfficeOperationCount)
	suite.Equal(int64(3), stats.ActiveUserCount)
	suite.Equal(int64(1), stats.ExpiredPermitCount)
	suite.Equal(int64(4), stats.ExpiringPermitCount)
	suite.True(stats.OfficeOperationsSummary.NetAmount.Equal(dec("70")))
	suite.True(stats.DailyOperationsSummary.NetAmount.Equal(dec("300")))
	suite.True(stats.EmployeeFinancials.TotalRequestedAmount.Equal(dec("9000")))
	suite.True(stats.EmployeeFinancials.TotalRevenue.Equal(dec("4000")))
	suite.True(stats.EmployeeFinancials.TotalRemaining.Equal(dec("5000")))

	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestStats_AvailableSlotsClampedAtZero() {
	ctx := context.Background()
	// 2 organizations x 4 seats = 8 seats, but 11 employees.
	suite.expectCounts(2, 11)

	unbounded := domain.DateWindow{}
	suite.mockReportingRepo.On("OfficeOperationSummary", mock.Anything, unbounded).
		Return(domain.FinancialSummary{}, nil).Once()
	suite.mockReportingRepo.On("DailyOperationSummary", mock.Anything, unbounded, (*string)(nil)).
		Return(domain.FinancialSummary{}, nil).Once()

	stats, err := suite.service.Stats(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(0), stats.AvailableSlots, "availableSlots never goes negative")
}

func (suite *DashboardServiceTestSuite) TestStats_MonthYearWindowOnlyAffectsSummaries() {
	ctx := context.Background()
	suite.expectCounts(10, 25)

	month, year := 2, 2024
	expectedWindow := domain.WindowFor(&month, &year)
	suite.mockReportingRepo.On("OfficeOperationSummary", mock.Anything, expectedWindow).
		Return(domain.FinancialSummary{TotalRevenue: dec("10")}, nil).Once()
	suite.mockReportingRepo.On("DailyOperationSummary", mock.Anything, expectedWindow, (*string)(nil)).
		Return(domain.FinancialSummary{TotalRevenue: dec("20")}, nil).Once()

	stats, err := suite.service.Stats(ctx, &month, &year)

	suite.Require().NoError(err)
	// Counts ignore the window entirely.
	suite.Equal(int64(40), stats.DailyOperationCount)
	suite.True(stats.OfficeOperationsSummary.TotalRevenue.Equal(dec("10")))
	suite.True(stats.DailyOperationsSummary.TotalRevenue.Equal(dec("20")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestOfficeOperationFinancials_WindowForwarded() {
	ctx := context.Background()
	year := 2023
	expectedWindow := domain.WindowFor(nil, &year)
	suite.Require().NotNil(expectedWindow.From)
	suite.Equal(time.January, expectedWindow.From.Month())

	suite.mockReportingRepo.On("OfficeOperationSummary", mock.Anything, expectedWindow).
		Return(domain.FinancialSummary{TotalRevenue: dec("99")}, nil).Once()

	summary, err := suite.service.OfficeOperationFinancials(ctx, nil, &year)

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.Equal(dec("99")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestDailyOperationFinancials_MonthWithoutYearIgnored() {
	ctx := context.Background()
	month := 5

	// Month alone cannot bound a window; the summary is all-time.
	suite.mockReportingRepo.On("DailyOperationSummary", mock.Anything, domain.DateWindow{}, (*string)(nil)).
		Return(domain.FinancialSummary{TotalRevenue: dec("7")}, nil).Once()

	summary, err := suite.service.DailyOperationFinancials(ctx, &month, nil)

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.Equal(dec("7")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
