package repositories

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the group-and-sum reads behind the aggregation
// layer. All of these are pure reads; zero matching rows yield zero-valued
// sums, never an error.
type ReportingRepository interface {
	// EmployeeOperationSums groups daily operations by employee and sums
	// revenue and expense amounts for exactly the given employee ids.
	// Employees with no operations are absent from the returned map; callers
	// own the zero fill-in.
	EmployeeOperationSums(ctx context.Context, employeeIDs []string) (map[string]domain.OperationSums, error)
	// DailyOperationSummary sums daily operations inside the window,
	// optionally scoped to one organization.
	DailyOperationSummary(ctx context.Context, window domain.DateWindow, organizationID *string) (domain.FinancialSummary, error)
	// OfficeOperationSummary sums office operations inside the window.
	OfficeOperationSummary(ctx context.Context, window domain.DateWindow) (domain.FinancialSummary, error)
	// TransferredTotals sums sponsor transfer amounts per organization for
	// exactly the given organization ids, in a single grouped query.
	TransferredTotals(ctx context.Context, organizationIDs []string) (map[string]decimal.Decimal, error)
	// EmployeeOperationsSummary sums all daily operations that belong to
	// type=employee records, all-time.
	EmployeeOperationsSummary(ctx context.Context) (domain.FinancialSummary, error)
}
