package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
)

type PgxDailyOperationRepository struct {
	BaseRepository
}

var _ portsrepo.DailyOperationRepository = (*PgxDailyOperationRepository)(nil)

func newPgxDailyOperationRepository(db *pgxpool.Pool) portsrepo.DailyOperationRepository {
	return &PgxDailyOperationRepository{BaseRepository: BaseRepository{Pool: db}}
}

const dailyOperationColumns = `daily_operation_id, organization_id, employee_id, date, amount, category,
	payment_method, invoice, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanDailyOperation(row pgx.Row) (*domain.DailyOperation, error) {
	var op domain.DailyOperation
	err := row.Scan(
		&op.DailyOperationID,
		&op.OrganizationID,
		&op.EmployeeID,
		&op.Date,
		&op.Amount,
		&op.Category,
		&op.PaymentMethod,
		&op.Invoice,
		&op.Notes,
		&op.CreatedAt,
		&op.CreatedBy,
		&op.LastUpdatedAt,
		&op.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *PgxDailyOperationRepository) SaveDailyOperation(ctx context.Context, op domain.DailyOperation) error {
	query := `
		INSERT INTO daily_operations (` + dailyOperationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		op.DailyOperationID,
		op.OrganizationID,
		op.EmployeeID,
		op.Date,
		op.Amount,
		op.Category,
		op.PaymentMethod,
		op.Invoice,
		op.Notes,
		op.CreatedAt,
		op.CreatedBy,
		op.LastUpdatedAt,
		op.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save daily operation: %w", err)
	}
	return nil
}

func (r *PgxDailyOperationRepository) FindDailyOperationByID(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error) {
	query := `SELECT ` + dailyOperationColumns + ` FROM daily_operations WHERE daily_operation_id = $1;`
	op, err := scanDailyOperation(r.Pool.QueryRow(ctx, query, dailyOperationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find daily operation by ID %s: %w", dailyOperationID, err)
	}
	return op, nil
}

func (r *PgxDailyOperationRepository) UpdateDailyOperation(ctx context.Context, op domain.DailyOperation) error {
	query := `
		UPDATE daily_operations SET
			date = $2,
			amount = $3,
			category = $4,
			payment_method = $5,
			invoice = $6,
			notes = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE daily_operation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		op.DailyOperationID,
		op.Date,
		op.Amount,
		op.Category,
		op.PaymentMethod,
		op.Invoice,
		op.Notes,
		op.LastUpdatedAt,
		op.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily operation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("daily operation not found")
	}
	return nil
}

func (r *PgxDailyOperationRepository) DeleteDailyOperation(ctx context.Context, dailyOperationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_operations WHERE daily_operation_id = $1;`, dailyOperationID)
	if err != nil {
		return fmt.Errorf("failed to delete daily operation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("daily operation not found")
	}
	return nil
}

func (r *PgxDailyOperationRepository) ListDailyOperationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.DailyOperation, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM daily_operations WHERE organization_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, organizationID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily operations: %w", err)
	}

	query := `
		SELECT ` + dailyOperationColumns + `
		FROM daily_operations
		WHERE organization_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list daily operations: %w", err)
	}
	defer rows.Close()

	ops := []domain.DailyOperation{}
	for rows.Next() {
		op, err := scanDailyOperation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan daily operation row: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate daily operation rows: %w", err)
	}
	return ops, total, nil
}

func (r *PgxDailyOperationRepository) CountDailyOperations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM daily_operations;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count daily operations: %w", err)
	}
	return count, nil
}

func (r *PgxDailyOperationRepository) CountDailyOperationsByOrganization(ctx context.Context, organizationID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM daily_operations WHERE organization_id = $1;`, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count daily operations by organization: %w", err)
	}
	return count, nil
}
