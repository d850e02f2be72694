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

type PgxSaudizationRepository struct {
	BaseRepository
}

var _ portsrepo.SaudizationRepository = (*PgxSaudizationRepository)(nil)

func newPgxSaudizationRepository(db *pgxpool.Pool) portsrepo.SaudizationRepository {
	return &PgxSaudizationRepository{BaseRepository: BaseRepository{Pool: db}}
}

const saudizationColumns = `saudization_id, organization_id, employee_name, work_permit_status,
	deportation_status, deportation_date, created_at, created_by, last_updated_at, last_updated_by`

func scanSaudization(row pgx.Row) (*domain.Saudization, error) {
	var s domain.Saudization
	err := row.Scan(
		&s.SaudizationID,
		&s.OrganizationID,
		&s.EmployeeName,
		&s.WorkPermitStatus,
		&s.DeportationStatus,
		&s.DeportationDate,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PgxSaudizationRepository) SaveSaudization(ctx context.Context, record domain.Saudization) error {
	query := `
		INSERT INTO saudizations (` + saudizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.SaudizationID,
		record.OrganizationID,
		record.EmployeeName,
		record.WorkPermitStatus,
		record.DeportationStatus,
		record.DeportationDate,
		record.CreatedAt,
		record.CreatedBy,
		record.LastUpdatedAt,
		record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save saudization record: %w", err)
	}
	return nil
}

func (r *PgxSaudizationRepository) FindSaudizationByID(ctx context.Context, saudizationID string) (*domain.Saudization, error) {
	query := `SELECT ` + saudizationColumns + ` FROM saudizations WHERE saudization_id = $1;`
	record, err := scanSaudization(r.Pool.QueryRow(ctx, query, saudizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find saudization record by ID %s: %w", saudizationID, err)
	}
	return record, nil
}

func (r *PgxSaudizationRepository) UpdateSaudization(ctx context.Context, record domain.Saudization) error {
	query := `
		UPDATE saudizations SET
			employee_name = $2,
			work_permit_status = $3,
			deportation_status = $4,
			deportation_date = $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE saudization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.SaudizationID,
		record.EmployeeName,
		record.WorkPermitStatus,
		record.DeportationStatus,
		record.DeportationDate,
		record.LastUpdatedAt,
		record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update saudization record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("saudization record not found")
	}
	return nil
}

func (r *PgxSaudizationRepository) DeleteSaudization(ctx context.Context, saudizationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM saudizations WHERE saudization_id = $1;`, saudizationID)
	if err != nil {
		return fmt.Errorf("failed to delete saudization record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("saudization record not found")
	}
	return nil
}

func (r *PgxSaudizationRepository) ListSaudizationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Saudization, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM saudizations WHERE organization_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, organizationID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count saudization records: %w", err)
	}

	query := `
		SELECT ` + saudizationColumns + `
		FROM saudizations
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saudization records: %w", err)
	}
	defer rows.Close()

	records := []domain.Saudization{}
	for rows.Next() {
		record, err := scanSaudization(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan saudization row: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate saudization rows: %w", err)
	}
	return records, total, nil
}
