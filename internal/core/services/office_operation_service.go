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

// officeOperationService implements OfficeOperationSvc.
type officeOperationService struct {
	BaseService
	officeOperationRepo portsrepo.OfficeOperationRepository
}

var _ portssvc.OfficeOperationSvc = (*officeOperationService)(nil)

// NewOfficeOperationService creates a new office operation service.
func NewOfficeOperationService(officeOperationRepo portsrepo.OfficeOperationRepository) portssvc.OfficeOperationSvc {
	return &officeOperationService{officeOperationRepo: officeOperationRepo}
}

func (s *officeOperationService) CreateOfficeOperation(ctx context.Context, req dto.CreateOfficeOperationRequest, creatorUserID string) (*domain.OfficeOperation, error) {
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	now := time.Now()
	op := domain.OfficeOperation{
		OfficeOperationID: uuid.NewString(),
		Date:              req.Date,
		Amount:            req.Amount,
		Type:              req.Type,
		PaymentMethod:     req.PaymentMethod,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.officeOperationRepo.SaveOfficeOperation(ctx, op); err != nil {
		s.LogError(ctx, err, "Failed to save office operation")
		return nil, fmt.Errorf("failed to save office operation: %w", err)
	}

	s.LogInfo(ctx, "Office operation created", "office_operation_id", op.OfficeOperationID, "type", string(op.Type))
	return &op, nil
}

func (s *officeOperationService) GetOfficeOperation(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error) {
	return s.findOfficeOperation(ctx, officeOperationID)
}

func (s *officeOperationService) UpdateOfficeOperation(ctx context.Context, officeOperationID string, req dto.UpdateOfficeOperationRequest, updaterUserID string) (*domain.OfficeOperation, error) {
	op, err := s.findOfficeOperation(ctx, officeOperationID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		op.Date = *req.Date
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount must not be negative")
		}
		op.Amount = *req.Amount
	}
	if req.Type != nil {
		op.Type = *req.Type
	}
	if req.PaymentMethod != nil {
		op.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		op.Notes = req.Notes
	}
	op.LastUpdatedAt = time.Now()
	op.LastUpdatedBy = updaterUserID

	if err := s.officeOperationRepo.UpdateOfficeOperation(ctx, *op); err != nil {
		s.LogError(ctx, err, "Failed to update office operation", "office_operation_id", officeOperationID)
		return nil, fmt.Errorf("failed to update office operation: %w", err)
	}

	s.LogInfo(ctx, "Office operation updated", "office_operation_id", officeOperationID)
	return op, nil
}

func (s *officeOperationService) DeleteOfficeOperation(ctx context.Context, officeOperationID string) error {
	if _, err := s.findOfficeOperation(ctx, officeOperationID); err != nil {
		return err
	}
	if err := s.officeOperationRepo.DeleteOfficeOperation(ctx, officeOperationID); err != nil {
		s.LogError(ctx, err, "Failed to delete office operation", "office_operation_id", officeOperationID)
		return fmt.Errorf("failed to delete office operation: %w", err)
	}
	s.LogInfo(ctx, "Office operation deleted", "office_operation_id", officeOperationID)
	return nil
}

func (s *officeOperationService) ListOfficeOperations(ctx context.Context, limit, offset int) ([]domain.OfficeOperation, int64, error) {
	ops, total, err := s.officeOperationRepo.ListOfficeOperations(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list office operations")
		return nil, 0, fmt.Errorf("failed to list office operations: %w", err)
	}
	return ops, total, nil
}

func (s *officeOperationService) findOfficeOperation(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error) {
	if err := uuid.Validate(officeOperationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid office operation ID format")
	}
	op, err := s.officeOperationRepo.FindOfficeOperationByID(ctx, officeOperationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find office operation", "office_operation_id", officeOperationID)
		return nil, fmt.Errorf("failed to find office operation: %w", err)
	}
	if op == nil {
		return nil, apperrors.NewNotFoundError("office operation not found")
	}
	return op, nil
}
