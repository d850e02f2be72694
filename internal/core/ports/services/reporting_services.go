package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// TotalsSvc is the totals aggregator: derived financial sums per employee,
// per organization, or globally, always recomputed from source rows.
type TotalsSvc interface {
	// TotalsForEmployees batch-computes totals for exactly the given employee
	// rows. Employees with no operations get a zero-valued entry with
	// remaining = requestedAmount; no id is ever absent from the result.
	TotalsForEmployees(ctx context.Context, employees []domain.Employee) (map[string]domain.EmployeeTotals, error)
	// OrganizationTotals rolls the aggregator up over every employee of the
	// organization.
	OrganizationTotals(ctx context.Context, organizationID string) (*domain.OrganizationTotals, error)
}

// DashboardSvc composes counts and windowed financial sums into the global
// dashboard snapshot. A nil month or year means that filter is absent.
type DashboardSvc interface {
	Stats(ctx context.Context, month, year *int) (*domain.DashboardStats, error)
	OfficeOperationFinancials(ctx context.Context, month, year *int) (domain.FinancialSummary, error)
	DailyOperationFinancials(ctx context.Context, month, year *int) (domain.FinancialSummary, error)
}
