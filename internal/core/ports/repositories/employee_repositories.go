package repositories

import (
	"context"
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeListFilter narrows and pages an employee listing. Search matches
// name or residence permit number as a case-insensitive substring.
type EmployeeListFilter struct {
	OrganizationID *string
	Search         string
	Limit          int
	Offset         int
}

// EmployeeRepository defines persistence operations for employees and vacancies.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	// ListEmployees returns one page plus the total filtered count.
	ListEmployees(ctx context.Context, filter EmployeeListFilter) ([]domain.Employee, int64, error)
	// ListEmployeesByOrganization returns every employee record of the
	// organization, unpaged. Used for organization-level totals.
	ListEmployeesByOrganization(ctx context.Context, organizationID string) ([]domain.Employee, error)
	CountEmployeesByOrganization(ctx context.Context, organizationID string) (int64, error)
	CountEmployeesByType(ctx context.Context, employeeType domain.EmployeeType) (int64, error)
	// CountExpiredPermits counts type=employee records whose residence permit
	// expiry is strictly before now.
	CountExpiredPermits(ctx context.Context, now time.Time) (int64, error)
	// CountExpiringPermits counts type=employee records whose residence permit
	// expiry falls in (now, until].
	CountExpiringPermits(ctx context.Context, now, until time.Time) (int64, error)
	// SumRequestedAmount sums requestedAmount over all type=employee records.
	SumRequestedAmount(ctx context.Context) (decimal.Decimal, error)
	// DeleteEmployeeCascade removes the employee and its daily operations in
	// one transaction, operations first.
	DeleteEmployeeCascade(ctx context.Context, employeeID string) error
}
