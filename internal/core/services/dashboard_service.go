package services

import (
	"context"
	"fmt"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
)

// expiringPermitHorizon is how far ahead a residence permit expiry still
// counts as "expiring soon" on the dashboard.
const expiringPermitHorizon = 30 * 24 * time.Hour

// dashboardService composes counts and windowed sums into the dashboard
// snapshot. Counts are always all-time; only the financial summaries honour
// the month/year filter.
type dashboardService struct {
	BaseService
	organizationRepo    portsrepo.OrganizationRepository
	employeeRepo        portsrepo.EmployeeRepository
	dailyOperationRepo  portsrepo.DailyOperationRepository
	officeOperationRepo portsrepo.OfficeOperationRepository
	userRepo            portsrepo.UserRepository
	reportingRepo       portsrepo.ReportingRepository
	now                 func() time.Time
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// NewDashboardService creates a new dashboard composer service.
func NewDashboardService(repos portsrepo.RepositoryProvider) portssvc.DashboardSvc {
	return &dashboardService{
		organizationRepo:    repos.OrganizationRepo,
		employeeRepo:        repos.EmployeeRepo,
		dailyOperationRepo:  repos.DailyOperationRepo,
		officeOperationRepo: repos.OfficeOperationRepo,
		userRepo:            repos.UserRepo,
		reportingRepo:       repos.ReportingRepo,
		now:                 time.Now,
	}
}

// Stats assembles the full dashboard snapshot.
func (s *dashboardService) Stats(ctx context.Context, month, year *int) (*domain.DashboardStats, error) {
	window := domain.WindowFor(month, year)
	now := s.now()

	organizationCount, err := s.organizationRepo.CountOrganizations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count organizations")
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	employeeCount, err := s.employeeRepo.CountEmployeesByType(ctx, domain.EmployeeTypeEmployee)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employees")
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	vacancyCount, err := s.employeeRepo.CountEmployeesByType(ctx, domain.EmployeeTypeVacancy)
	if err != nil {
		s.LogError(ctx, err, "Failed to count vacancies")
		return nil, fmt.Errorf("failed to count vacancies: %w", err)
	}
	dailyOperationCount, err := s.dailyOperationRepo.CountDailyOperations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count daily operations")
		return nil, fmt.Errorf("failed to count daily operations: %w", err)
	}
	officeOperationCount, err := s.officeOperationRepo.CountOfficeOperations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count office operations")
		return nil, fmt.Errorf("failed to count office operations: %w", err)
	}
	activeUserCount, err := s.userRepo.CountActiveUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active users")
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	expiredPermitCount, err := s.employeeRepo.CountExpiredPermits(ctx, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to count expired permits")
		return nil, fmt.Errorf("failed to count expired permits: %w", err)
	}
	expiringPermitCount, err := s.employeeRepo.CountExpiringPermits(ctx, now, now.Add(expiringPermitHorizon))
	if err != nil {
		s.LogError(ctx, err, "Failed to count expiring permits")
		return nil, fmt.Errorf("failed to count expiring permits: %w", err)
	}

	officeSummary, err := s.reportingRepo.OfficeOperationSummary(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize office operations")
		return nil, fmt.Errorf("failed to summarize office operations: %w", err)
	}
	dailySummary, err := s.reportingRepo.DailyOperationSummary(ctx, window, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize daily operations")
		return nil, fmt.Errorf("failed to summarize daily operations: %w", err)
	}

	employeeFinancials, err := s.employeeFinancials(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		OrganizationCount:       organizationCount,
		EmployeeCount:           employeeCount,
		VacancyCount:            vacancyCount,
		AvailableSlots:          domain.AvailableSlots(organizationCount, employeeCount),
		DailyOperationCount:     dailyOperationCount,
		OfficeOperationCount:    officeOperationCount,
		ActiveUserCount:         activeUserCount,
		ExpiredPermitCount:      expiredPermitCount,
		ExpiringPermitCount:     expiringPermitCount,
		OfficeOperationsSummary: officeSummary,
		DailyOperationsSummary:  dailySummary,
		EmployeeFinancials:      *employeeFinancials,
	}, nil
}

// OfficeOperationFinancials sums office operations inside the month/year window.
func (s *dashboardService) OfficeOperationFinancials(ctx context.Context, month, year *int) (domain.FinancialSummary, error) {
	summary, err := s.reportingRepo.OfficeOperationSummary(ctx, domain.WindowFor(month, year))
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize office operations")
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize office operations: %w", err)
	}
	return summary, nil
}

// DailyOperationFinancials sums daily operations inside the month/year window,
// across every organization.
func (s *dashboardService) DailyOperationFinancials(ctx context.Context, month, year *int) (domain.FinancialSummary, error) {
	summary, err := s.reportingRepo.DailyOperationSummary(ctx, domain.WindowFor(month, year), nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize daily operations")
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize daily operations: %w", err)
	}
	return summary, nil
}

// employeeFinancials builds the all-time employee financial block: the sum of
// requested amounts, the revenue collected against them, and what is still
// outstanding. This block never honours the month/year filter.
func (s *dashboardService) employeeFinancials(ctx context.Context) (*domain.EmployeeFinancials, error) {
	totalRequested, err := s.employeeRepo.SumRequestedAmount(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum requested amounts")
		return nil, fmt.Errorf("failed to sum requested amounts: %w", err)
	}
	operationsSummary, err := s.reportingRepo.EmployeeOperationsSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize employee operations")
		return nil, fmt.Errorf("failed to summarize employee operations: %w", err)
	}
	return &domain.EmployeeFinancials{
		TotalRequestedAmount: totalRequested,
		TotalRevenue:         operationsSummary.TotalRevenue,
		TotalRemaining:       totalRequested.Sub(operationsSummary.TotalRevenue),
	}, nil
}
