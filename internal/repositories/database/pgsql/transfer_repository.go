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

type PgxTransferRepository struct {
	BaseRepository
}

var _ portsrepo.TransferRepository = (*PgxTransferRepository)(nil)

func newPgxTransferRepository(db *pgxpool.Pool) portsrepo.TransferRepository {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: db}}
}

const transferColumns = `transfer_id, organization_id, date, amount, notes,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var t domain.Transfer
	err := row.Scan(
		&t.TransferID,
		&t.OrganizationID,
		&t.Date,
		&t.Amount,
		&t.Notes,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	query := `
		INSERT INTO organization_daily_operations (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		transfer.TransferID,
		transfer.OrganizationID,
		transfer.Date,
		transfer.Amount,
		transfer.Notes,
		transfer.CreatedAt,
		transfer.CreatedBy,
		transfer.LastUpdatedAt,
		transfer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}

func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM organization_daily_operations WHERE transfer_id = $1;`
	transfer, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find transfer by ID %s: %w", transferID, err)
	}
	return transfer, nil
}

func (r *PgxTransferRepository) UpdateTransfer(ctx context.Context, transfer domain.Transfer) error {
	query := `
		UPDATE organization_daily_operations SET
			date = $2,
			amount = $3,
			notes = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE transfer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		transfer.TransferID,
		transfer.Date,
		transfer.Amount,
		transfer.Notes,
		transfer.LastUpdatedAt,
		transfer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transfer not found")
	}
	return nil
}

func (r *PgxTransferRepository) DeleteTransfer(ctx context.Context, transferID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM organization_daily_operations WHERE transfer_id = $1;`, transferID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transfer not found")
	}
	return nil
}

func (r *PgxTransferRepository) ListTransfersByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Transfer, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM organization_daily_operations WHERE organization_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, organizationID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	query := `
		SELECT ` + transferColumns + `
		FROM organization_daily_operations
		WHERE organization_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, *transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate transfer rows: %w", err)
	}
	return transfers, total, nil
}
