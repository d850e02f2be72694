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

type PgxOfficeOperationRepository struct {
	BaseRepository
}

var _ portsrepo.OfficeOperationRepository = (*PgxOfficeOperationRepository)(nil)

func newPgxOfficeOperationRepository(db *pgxpool.Pool) portsrepo.OfficeOperationRepository {
	return &PgxOfficeOperationRepository{BaseRepository: BaseRepository{Pool: db}}
}

const officeOperationColumns = `office_operation_id, date, amount, type, payment_method, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOfficeOperation(row pgx.Row) (*domain.OfficeOperation, error) {
	var op domain.OfficeOperation
	err := row.Scan(
		&op.OfficeOperationID,
		&op.Date,
		&op.Amount,
		&op.Type,
		&op.PaymentMethod,
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

func (r *PgxOfficeOperationRepository) SaveOfficeOperation(ctx context.Context, op domain.OfficeOperation) error {
	query := `
		INSERT INTO office_operations (` + officeOperationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		op.OfficeOperationID,
		op.Date,
		op.Amount,
		op.Type,
		op.PaymentMethod,
		op.Notes,
		op.CreatedAt,
		op.CreatedBy,
		op.LastUpdatedAt,
		op.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save office operation: %w", err)
	}
	return nil
}

func (r *PgxOfficeOperationRepository) FindOfficeOperationByID(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error) {
	query := `SELECT ` + officeOperationColumns + ` FROM office_operations WHERE office_operation_id = $1;`
	op, err := scanOfficeOperation(r.Pool.QueryRow(ctx, query, officeOperationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find office operation by ID %s: %w", officeOperationID, err)
	}
	return op, nil
}

func (r *PgxOfficeOperationRepository) UpdateOfficeOperation(ctx context.Context, op domain.OfficeOperation) error {
	query := `
		UPDATE office_operations SET
			date = $2,
			amount = $3,
			type = $4,
			payment_method = $5,
			notes = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE office_operation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		op.OfficeOperationID,
		op.Date,
		op.Amount,
		op.Type,
		op.PaymentMethod,
		op.Notes,
		op.LastUpdatedAt,
		op.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update office operation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("office operation not found")
	}
	return nil
}

func (r *PgxOfficeOperationRepository) DeleteOfficeOperation(ctx context.Context, officeOperationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM office_operations WHERE office_operation_id = $1;`, officeOperationID)
	if err != nil {
		return fmt.Errorf("failed to delete office operation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("office operation not found")
	}
	return nil
}

func (r *PgxOfficeOperationRepository) ListOfficeOperations(ctx context.Context, limit, offset int) ([]domain.OfficeOperation, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM office_operations;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count office operations: %w", err)
	}

	query := `
		SELECT ` + officeOperationColumns + `
		FROM office_operations
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list office operations: %w", err)
	}
	defer rows.Close()

	ops := []domain.OfficeOperation{}
	for rows.Next() {
		op, err := scanOfficeOperation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan office operation row: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate office operation rows: %w", err)
	}
	return ops, total, nil
}

func (r *PgxOfficeOperationRepository) CountOfficeOperations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM office_operations;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count office operations: %w", err)
	}
	return count, nil
}
