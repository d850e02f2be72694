package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// OrganizationSvc defines operations over organizations, including the
// enriched reads that attach the sponsor transfer total.
type OrganizationSvc interface {
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error)
	// GetOrganization returns the organization enriched with its
	// transferredToSponsorTotal.
	GetOrganization(ctx context.Context, organizationID string) (*domain.OrganizationWithTransfers, error)
	UpdateOrganization(ctx context.Context, organizationID string, req dto.UpdateOrganizationRequest, updaterUserID string) (*domain.Organization, error)
	// DeleteOrganization removes the organization and cascades to every child
	// record inside one store transaction.
	DeleteOrganization(ctx context.Context, organizationID string) error
	// ListOrganizations returns one enriched page plus the filtered total.
	ListOrganizations(ctx context.Context, name string, limit, offset int) ([]domain.OrganizationWithTransfers, int64, error)
	CountEmployees(ctx context.Context, organizationID string) (int64, error)
	CountDailyOperations(ctx context.Context, organizationID string) (int64, error)
	// DailyOperationTotals sums the organization's daily operations into a
	// revenue/expense/net block.
	DailyOperationTotals(ctx context.Context, organizationID string) (domain.FinancialSummary, error)
}
