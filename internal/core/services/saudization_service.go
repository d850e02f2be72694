package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maktab-hr/manpower_office_app/internal/apperrors"
	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	portsrepo "github.com/maktab-hr/manpower_office_app/internal/core/ports/repositories"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// saudizationService implements SaudizationSvc. A record may only carry a
// deportation date when its status actually is "deported".
type saudizationService struct {
	BaseService
	saudizationRepo  portsrepo.SaudizationRepository
	organizationRepo portsrepo.OrganizationRepository
}

var _ portssvc.SaudizationSvc = (*saudizationService)(nil)

// NewSaudizationService creates a new saudization service.
func NewSaudizationService(
	saudizationRepo portsrepo.SaudizationRepository,
	organizationRepo portsrepo.OrganizationRepository,
) portssvc.SaudizationSvc {
	return &saudizationService{
		saudizationRepo:  saudizationRepo,
		organizationRepo: organizationRepo,
	}
}

func (s *saudizationService) CreateSaudization(ctx context.Context, organizationID string, req dto.CreateSaudizationRequest, creatorUserID string) (*domain.Saudization, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid organization ID format")
	}
	if err := validateDeportation(req.DeportationStatus, req.DeportationDate); err != nil {
		return nil, err
	}

	org, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find organization", "organization_id", organizationID)
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	if org == nil {
		return nil, apperrors.NewNotFoundError("organization not found")
	}

	now := time.Now()
	record := domain.Saudization{
		SaudizationID:     uuid.NewString(),
		OrganizationID:    organizationID,
		EmployeeName:      req.EmployeeName,
		WorkPermitStatus:  req.WorkPermitStatus,
		DeportationStatus: req.DeportationStatus,
		DeportationDate:   req.DeportationDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.saudizationRepo.SaveSaudization(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save saudization record")
		return nil, fmt.Errorf("failed to save saudization record: %w", err)
	}

	s.LogInfo(ctx, "Saudization record created", "saudization_id", record.SaudizationID)
	return &record, nil
}

func (s *saudizationService) GetSaudization(ctx context.Context, saudizationID string) (*domain.Saudization, error) {
	return s.findSaudization(ctx, saudizationID)
}

func (s *saudizationService) UpdateSaudization(ctx context.Context, saudizationID string, req dto.UpdateSaudizationRequest, updaterUserID string) (*domain.Saudization, error) {
	record, err := s.findSaudization(ctx, saudizationID)
	if err != nil {
		return nil, err
	}

	if req.EmployeeName != nil {
		record.EmployeeName = *req.EmployeeName
	}
	if req.WorkPermitStatus != nil {
		record.WorkPermitStatus = *req.WorkPermitStatus
	}
	if req.DeportationStatus != nil {
		record.DeportationStatus = *req.DeportationStatus
	}
	if req.DeportationDate != nil {
		record.DeportationDate = req.DeportationDate
	}
	// Validate the resulting state, not just the patch.
	if err := validateDeportation(record.DeportationStatus, record.DeportationDate); err != nil {
		return nil, err
	}
	if record.DeportationStatus != domain.DeportationDeported {
		record.DeportationDate = nil
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = updaterUserID

	if err := s.saudizationRepo.UpdateSaudization(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update saudization record", "saudization_id", saudizationID)
		return nil, fmt.Errorf("failed to update saudization record: %w", err)
	}

	s.LogInfo(ctx, "Saudization record updated", "saudization_id", saudizationID)
	return record, nil
}

func (s *saudizationService) DeleteSaudization(ctx context.Context, saudizationID string) error {
	if _, err := s.findSaudization(ctx, saudizationID); err != nil {
		return err
	}
	if err := s.saudizationRepo.DeleteSaudization(ctx, saudizationID); err != nil {
		s.LogError(ctx, err, "Failed to delete saudization record", "saudization_id", saudizationID)
		return fmt.Errorf("failed to delete saudization record: %w", err)
	}
	s.LogInfo(ctx, "Saudization record deleted", "saudization_id", saudizationID)
	return nil
}

func (s *saudizationService) ListSaudizationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Saudization, int64, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, 0, apperrors.NewBadRequestError("invalid organization ID format")
	}
	records, total, err := s.saudizationRepo.ListSaudizationsByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list saudization records", "organization_id", organizationID)
		return nil, 0, fmt.Errorf("failed to list saudization records: %w", err)
	}
	return records, total, nil
}

func (s *saudizationService) findSaudization(ctx context.Context, saudizationID string) (*domain.Saudization, error) {
	if err := uuid.Validate(saudizationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid saudization ID format")
	}
	record, err := s.saudizationRepo.FindSaudizationByID(ctx, saudizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find saudization record", "saudization_id", saudizationID)
		return nil, fmt.Errorf("failed to find saudization record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("saudization record not found")
	}
	return record, nil
}

// validateDeportation enforces that a deportation date is present exactly when
// the status is "deported".
func validateDeportation(status domain.DeportationStatus, date *time.Time) error {
	if status == domain.DeportationDeported && date == nil {
		return apperrors.NewValidationFailedError("deportationDate is required when deportationStatus is deported")
	}
	return nil
}
