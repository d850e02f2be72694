package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ReportingRepository answers aggregate questions with single grouped queries
// so list pages and dashboards stay at a constant query count.
type ReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *ReportingRepository) EmployeeOperationSums(ctx context.Context, employeeIDs []string) (map[string]domain.OperationSums, error) {
	sums := make(map[string]domain.OperationSums, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return sums, nil
	}

	query := `
		SELECT employee_id,
			COALESCE(SUM(CASE WHEN category = 'revenue' THEN amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN category = 'expense' THEN amount ELSE 0 END), 0) AS expense
		FROM daily_operations
		WHERE employee_id = ANY($1)
		GROUP BY employee_id;
	`
	rows, err := r.Pool.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum employee operations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var s domain.OperationSums
		if err := rows.Scan(&employeeID, &s.Revenue, &s.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan employee operation sums: %w", err)
		}
		sums[employeeID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee operation sums: %w", err)
	}
	return sums, nil
}

func (r *ReportingRepository) DailyOperationSummary(ctx context.Context, window domain.DateWindow, organizationID *string) (domain.FinancialSummary, error) {
	conds := []string{}
	args := []any{}
	if organizationID != nil {
		args = append(args, *organizationID)
		conds = append(conds, fmt.Sprintf("organization_id = $%d", len(args)))
	}
	conds, args = appendWindowConds(conds, args, window)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN category = 'revenue' THEN amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN category = 'expense' THEN amount ELSE 0 END), 0) AS expense
		FROM daily_operations` + whereClause(conds) + `;`

	var summary domain.FinancialSummary
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&summary.TotalRevenue, &summary.TotalExpenses); err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize daily operations: %w", err)
	}
	summary.NetAmount = summary.TotalRevenue.Sub(summary.TotalExpenses)
	return summary, nil
}

func (r *ReportingRepository) OfficeOperationSummary(ctx context.Context, window domain.DateWindow) (domain.FinancialSummary, error) {
	conds, args := appendWindowConds(nil, nil, window)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'revenue' THEN amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense
		FROM office_operations` + whereClause(conds) + `;`

	var summary domain.FinancialSummary
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&summary.TotalRevenue, &summary.TotalExpenses); err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize office operations: %w", err)
	}
	summary.NetAmount = summary.TotalRevenue.Sub(summary.TotalExpenses)
	return summary, nil
}

func (r *ReportingRepository) TransferredTotals(ctx context.Context, organizationIDs []string) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal, len(organizationIDs))
	if len(organizationIDs) == 0 {
		return totals, nil
	}

	query := `
		SELECT organization_id, COALESCE(SUM(amount), 0)
		FROM organization_daily_operations
		WHERE organization_id = ANY($1)
		GROUP BY organization_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transfers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var organizationID string
		var total decimal.Decimal
		if err := rows.Scan(&organizationID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan transfer totals: %w", err)
		}
		totals[organizationID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transfer totals: %w", err)
	}
	return totals, nil
}

// EmployeeOperationsSummary sums daily operations over real employees only, so
// vacancy placeholders never distort office-wide financials.
func (r *ReportingRepository) EmployeeOperationsSummary(ctx context.Context) (domain.FinancialSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN d.category = 'revenue' THEN d.amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN d.category = 'expense' THEN d.amount ELSE 0 END), 0) AS expense
		FROM daily_operations d
		JOIN employees e ON e.employee_id = d.employee_id AND e.type = 'employee';
	`
	var summary domain.FinancialSummary
	if err := r.Pool.QueryRow(ctx, query).Scan(&summary.TotalRevenue, &summary.TotalExpenses); err != nil {
		return domain.FinancialSummary{}, fmt.Errorf("failed to summarize employee operations: %w", err)
	}
	summary.NetAmount = summary.TotalRevenue.Sub(summary.TotalExpenses)
	return summary, nil
}

func appendWindowConds(conds []string, args []any, window domain.DateWindow) ([]string, []any) {
	if window.From != nil {
		args = append(args, *window.From)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if window.To != nil {
		args = append(args, *window.To)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	return conds, args
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
