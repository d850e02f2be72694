package repositories

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// OrganizationListFilter narrows and pages an organization listing.
// Name matches on a word boundary, case-insensitively.
type OrganizationListFilter struct {
	Name   string
	Limit  int
	Offset int
}

// OrganizationRepository defines persistence operations for organizations.
type OrganizationRepository interface {
	SaveOrganization(ctx context.Context, org domain.Organization) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, org domain.Organization) error
	// ListOrganizations returns one page plus the total filtered count.
	ListOrganizations(ctx context.Context, filter OrganizationListFilter) ([]domain.Organization, int64, error)
	CountOrganizations(ctx context.Context) (int64, error)
	// DeleteOrganizationCascade removes the organization and every child record
	// (daily operations, transfers, saudizations, employees) in one transaction,
	// children first. Returns apperrors.ErrNotFound if the organization is absent.
	DeleteOrganizationCascade(ctx context.Context, organizationID string) error
}
