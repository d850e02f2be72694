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

// transferService implements TransferSvc for organization daily operations
// (sponsor transfers).
type transferService struct {
	BaseService
	transferRepo     portsrepo.TransferRepository
	organizationRepo portsrepo.OrganizationRepository
}

var _ portssvc.TransferSvc = (*transferService)(nil)

// NewTransferService creates a new transfer service.
func NewTransferService(
	transferRepo portsrepo.TransferRepository,
	organizationRepo portsrepo.OrganizationRepository,
) portssvc.TransferSvc {
	return &transferService{
		transferRepo:     transferRepo,
		organizationRepo: organizationRepo,
	}
}

func (s *transferService) CreateTransfer(ctx context.Context, organizationID string, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error) {
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}
	if err := uuid.Validate(organizationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid organization ID format")
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
	transfer := domain.Transfer{
		TransferID:     uuid.NewString(),
		OrganizationID: organizationID,
		Date:           req.Date,
		Amount:         req.Amount,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to save transfer")
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created", "transfer_id", transfer.TransferID, "organization_id", organizationID)
	return &transfer, nil
}

func (s *transferService) GetTransfer(ctx context.Context, transferID string) (*domain.Transfer, error) {
	return s.findTransfer(ctx, transferID)
}

func (s *transferService) UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest, updaterUserID string) (*domain.Transfer, error) {
	transfer, err := s.findTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		transfer.Date = *req.Date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount must not be negative")
		}
		transfer.Amount = *req.Amount
	}
	if req.Notes != nil {
		transfer.Notes = req.Notes
	}
	transfer.LastUpdatedAt = time.Now()
	transfer.LastUpdatedBy = updaterUserID

	if err := s.transferRepo.UpdateTransfer(ctx, *transfer); err != nil {
		s.LogError(ctx, err, "Failed to update transfer", "transfer_id", transferID)
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer updated", "transfer_id", transferID)
	return transfer, nil
}

func (s *transferService) DeleteTransfer(ctx context.Context, transferID string) error {
	if _, err := s.findTransfer(ctx, transferID); err != nil {
		return err
	}
	if err := s.transferRepo.DeleteTransfer(ctx, transferID); err != nil {
		s.LogError(ctx, err, "Failed to delete transfer", "transfer_id", transferID)
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	s.LogInfo(ctx, "Transfer deleted", "transfer_id", transferID)
	return nil
}

func (s *transferService) ListTransfersByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Transfer, int64, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, 0, apperrors.NewBadRequestError("invalid organization ID format")
	}
	transfers, total, err := s.transferRepo.ListTransfersByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers", "organization_id", organizationID)
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func (s *transferService) findTransfer(ctx context.Context, transferID string) (*domain.Transfer, error) {
	if err := uuid.Validate(transferID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid transfer ID format")
	}
	transfer, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transfer", "transfer_id", transferID)
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}
	if transfer == nil {
		return nil, apperrors.NewNotFoundError("transfer not found")
	}
	return transfer, nil
}
