package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
)

// totalsService implements the TotalsSvc aggregator. Totals are always
// recomputed from the operation rows; nothing derived is ever persisted.
type totalsService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	employeeRepo  portsrepo.EmployeeRepository
}

var _ portssvc.TotalsSvc = (*totalsService)(nil)

// NewTotalsService creates a new totals aggregator service.
func NewTotalsService(reportingRepo portsrepo.ReportingRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.TotalsSvc {
	return &totalsService{
		reportingRepo: reportingRepo,
		employeeRepo:  employeeRepo,
	}
}

// TotalsForEmployees batch-computes totals for the given employee rows using
// one grouped query. Every input id is present in the result: employees
// without operations get zero revenue/expenses and remaining equal to their
// requested amount.
func (s *totalsService) TotalsForEmployees(ctx context.Context, employees []domain.Employee) (map[string]domain.EmployeeTotals, error) {
	totals := make(map[string]domain.EmployeeTotals, len(employees))
	if len(employees) == 0 {
		return totals, nil
	}

	ids := make([]string, 0, len(employees))
	for i := range employees {
		ids = append(ids, employees[i].EmployeeID)
	}

	sums, err := s.reportingRepo.EmployeeOperationSums(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum employee operations")
		return nil, fmt.Errorf("failed to sum employee operations: %w", err)
	}

	for i := range employees {
		e := &employees[i]
		// Missing map entries are zero-valued, which is exactly the fill-in
		// an operation-less employee needs.
		sum := sums[e.EmployeeID]
		totals[e.EmployeeID] = domain.EmployeeTotals{
			TotalRevenue:     sum.Revenue,
			TotalExpenses:    sum.Expense,
			RevenueRemaining: sum.Revenue.Sub(sum.Expense),
			Remaining:        e.RequestedAmount.Sub(sum.Revenue),
		}
	}
	return totals, nil
}

// OrganizationTotals rolls the per-employee aggregator up over every employee
// record of the organization, vacancies included.
func (s *totalsService) OrganizationTotals(ctx context.Context, organizationID string) (*domain.OrganizationTotals, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid organization ID format")
	}

	employees, err := s.employeeRepo.ListEmployeesByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for organization totals", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to list employees for organization totals: %w", err)
	}

	perEmployee, err := s.TotalsForEmployees(ctx, employees)
	if err != nil {
		return nil, err
	}

	rollup := &domain.OrganizationTotals{}
	for i := range employees {
		e := &employees[i]
		t := perEmployee[e.EmployeeID]
		rollup.TotalRequested = rollup.TotalRequested.Add(e.RequestedAmount)
		rollup.TotalRevenue = rollup.TotalRevenue.Add(t.TotalRevenue)
		rollup.TotalExpenses = rollup.TotalExpenses.Add(t.TotalExpenses)
		rollup.TotalRevenueRemaining = rollup.TotalRevenueRemaining.Add(t.RevenueRemaining)
		rollup.TotalRemaining = rollup.TotalRemaining.Add(t.Remaining)
	}
	return rollup, nil
}
