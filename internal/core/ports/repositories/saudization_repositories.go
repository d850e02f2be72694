package repositories

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// SaudizationRepository defines persistence operations for saudization
// compliance records.
type SaudizationRepository interface {
	SaveSaudization(ctx context.Context, record domain.Saudization) error
	FindSaudizationByID(ctx context.Context, saudizationID string) (*domain.Saudization, error)
	UpdateSaudization(ctx context.Context, record domain.Saudization) error
	DeleteSaudization(ctx context.Context, saudizationID string) error
	ListSaudizationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Saudization, int64, error)
}
