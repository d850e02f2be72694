package pgsql

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: db}}
}

const organizationColumns = `organization_id, owner_name, owner_national_id, owner_code, owner_birth_date,
	subscription_start, subscription_end, commercial_record_number, commercial_record_expiry,
	sponsor_amount, created_at, created_by, last_updated_at, last_updated_by`

// nameSearchPattern anchors the filter on a word boundary and neutralizes any
// regex metacharacters in the user-supplied value, so "A(B" is matched as a
// literal instead of raising "invalid regular expression" in Postgres.
func nameSearchPattern(name string) string {
	return `\m` + regexp.QuoteMeta(name)
}

func scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var org domain.Organization
	err := row.Scan(
		&org.OrganizationID,
		&org.OwnerName,
		&org.OwnerNationalID,
		&org.OwnerCode,
		&org.OwnerBirthDate,
		&org.SubscriptionStart,
		&org.SubscriptionEnd,
		&org.CommercialRecordNumber,
		&org.CommercialRecordExpiry,
		&org.SponsorAmount,
		&org.CreatedAt,
		&org.CreatedBy,
		&org.LastUpdatedAt,
		&org.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.OwnerName,
		org.OwnerNationalID,
		org.OwnerCode,
		org.OwnerBirthDate,
		org.SubscriptionStart,
		org.SubscriptionEnd,
		org.CommercialRecordNumber,
		org.CommercialRecordExpiry,
		org.SponsorAmount,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = $1;`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization by ID %s: %w", organizationID, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations SET
			owner_name = $2,
			owner_national_id = $3,
			owner_code = $4,
			owner_birth_date = $5,
			subscription_start = $6,
			subscription_end = $7,
			commercial_record_number = $8,
			commercial_record_expiry = $9,
			sponsor_amount = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.OwnerName,
		org.OwnerNationalID,
		org.OwnerCode,
		org.OwnerBirthDate,
		org.SubscriptionStart,
		org.SubscriptionEnd,
		org.CommercialRecordNumber,
		org.CommercialRecordExpiry,
		org.SponsorAmount,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("organization not found")
	}
	return nil
}

func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context, filter portsrepo.OrganizationListFilter) ([]domain.Organization, int64, error) {
	where := ""
	args := []any{}
	if filter.Name != "" {
		// Word-boundary match so "rash" finds "Al Rashid" but not "Marash".
		where = `WHERE owner_name ~* $1`
		args = append(args, nameSearchPattern(filter.Name))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM organizations ` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+organizationColumns+`
		FROM organizations
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	orgs := []domain.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, *org)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate organization rows: %w", err)
	}
	return orgs, total, nil
}

func (r *PgxOrganizationRepository) CountOrganizations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM organizations;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return count, nil
}

// DeleteOrganizationCascade removes the organization and every child record in
// one transaction, children first so no orphan survives a partial failure.
func (r *PgxOrganizationRepository) DeleteOrganizationCascade(ctx context.Context, organizationID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	childDeletes := []string{
		`DELETE FROM daily_operations WHERE organization_id = $1;`,
		`DELETE FROM organization_daily_operations WHERE organization_id = $1;`,
		`DELETE FROM saudizations WHERE organization_id = $1;`,
		`DELETE FROM employees WHERE organization_id = $1;`,
	}
	for _, query := range childDeletes {
		if _, err := tx.Exec(ctx, query, organizationID); err != nil {
			return fmt.Errorf("failed to delete organization children: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM organizations WHERE organization_id = $1;`, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("organization not found")
	}

	return r.Commit(ctx, tx)
}
