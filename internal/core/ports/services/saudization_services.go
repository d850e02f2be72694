package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// SaudizationSvc defines operations over saudization compliance records.
type SaudizationSvc interface {
	CreateSaudization(ctx context.Context, organizationID string, req dto.CreateSaudizationRequest, creatorUserID string) (*domain.Saudization, error)
	GetSaudization(ctx context.Context, saudizationID string) (*domain.Saudization, error)
	UpdateSaudization(ctx context.Context, saudizationID string, req dto.UpdateSaudizationRequest, updaterUserID string) (*domain.Saudization, error)
	DeleteSaudization(ctx context.Context, saudizationID string) error
	ListSaudizationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Saudization, int64, error)
}
