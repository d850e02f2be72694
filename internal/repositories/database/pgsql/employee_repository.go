package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

const employeeColumns = `employee_id, organization_id, type, name, nationality, phone,
	residence_permit_number, residence_permit_expiry, work_card_issue_date,
	has_arrived, is_sold, requested_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.OrganizationID,
		&e.Type,
		&e.Name,
		&e.Nationality,
		&e.Phone,
		&e.ResidencePermitNumber,
		&e.ResidencePermitExpiry,
		&e.WorkCardIssueDate,
		&e.HasArrived,
		&e.IsSold,
		&e.RequestedAmount,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.OrganizationID,
		employee.Type,
		employee.Name,
		employee.Nationality,
		employee.Phone,
		employee.ResidencePermitNumber,
		employee.ResidencePermitExpiry,
		employee.WorkCardIssueDate,
		employee.HasArrived,
		employee.IsSold,
		employee.RequestedAmount,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	employee, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees SET
			name = $2,
			nationality = $3,
			phone = $4,
			residence_permit_number = $5,
			residence_permit_expiry = $6,
			work_card_issue_date = $7,
			has_arrived = $8,
			is_sold = $9,
			requested_amount = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Nationality,
		employee.Phone,
		employee.ResidencePermitNumber,
		employee.ResidencePermitExpiry,
		employee.WorkCardIssueDate,
		employee.HasArrived,
		employee.IsSold,
		employee.RequestedAmount,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}
	return nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.EmployeeListFilter) ([]domain.Employee, int64, error) {
	where := "WHERE 1=1"
	args := []any{}
	if filter.OrganizationID != nil {
		args = append(args, *filter.OrganizationID)
		where += fmt.Sprintf(" AND organization_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR residence_permit_number ILIKE $%d)", len(args), len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, total, nil
}

func (r *PgxEmployeeRepository) ListEmployeesByOrganization(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by organization: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) CountEmployeesByOrganization(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE organization_id = $1;`, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by organization: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) CountEmployeesByType(ctx context.Context, employeeType domain.EmployeeType) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE type = $1;`, employeeType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by type: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) CountExpiredPermits(ctx context.Context, now time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM employees
		WHERE type = 'employee' AND residence_permit_expiry IS NOT NULL AND residence_permit_expiry < $1;
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expired permits: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) CountExpiringPermits(ctx context.Context, now, until time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM employees
		WHERE type = 'employee' AND residence_permit_expiry IS NOT NULL
			AND residence_permit_expiry > $1 AND residence_permit_expiry <= $2;
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, now, until).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expiring permits: %w", err)
	}
	return count, nil
}

func (r *PgxEmployeeRepository) SumRequestedAmount(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(requested_amount), 0) FROM employees WHERE type = 'employee';`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum requested amounts: %w", err)
	}
	return sum, nil
}

// DeleteEmployeeCascade removes the employee and its daily operations in one
// transaction, operations first.
func (r *PgxEmployeeRepository) DeleteEmployeeCascade(ctx context.Context, employeeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM daily_operations WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee operations: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}

	return r.Commit(ctx, tx)
}
