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

// dailyOperationService implements DailyOperationSvc. Creation enforces that
// the referenced employee actually belongs to the stated organization.
type dailyOperationService struct {
	BaseService
	dailyOperationRepo portsrepo.DailyOperationRepository
	employeeRepo       portsrepo.EmployeeRepository
}

var _ portssvc.DailyOperationSvc = (*dailyOperationService)(nil)

// NewDailyOperationService creates a new daily operation service.
func NewDailyOperationService(
	dailyOperationRepo portsrepo.DailyOperationRepository,
	employeeRepo portsrepo.EmployeeRepository,
) portssvc.DailyOperationSvc {
	return &dailyOperationService{
		dailyOperationRepo: dailyOperationRepo,
		employeeRepo:       employeeRepo,
	}
}

func (s *dailyOperationService) CreateDailyOperation(ctx context.Context, req dto.CreateDailyOperationRequest, creatorUserID string) (*domain.DailyOperation, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be positive")
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find employee", "employee_id", req.EmployeeID)
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, apperrors.NewNotFoundError("employee not found")
	}
	if employee.OrganizationID != req.OrganizationID {
		return nil, apperrors.NewValidationFailedError("employee does not belong to the given organization")
	}

	now := time.Now()
	op := domain.DailyOperation{
		DailyOperationID: uuid.NewString(),
		OrganizationID:   req.OrganizationID,
		EmployeeID:       req.EmployeeID,
		Date:             req.Date,
		Amount:           req.Amount,
		Category:         req.Category,
		PaymentMethod:    req.PaymentMethod,
		Invoice:          req.Invoice,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.dailyOperationRepo.SaveDailyOperation(ctx, op); err != nil {
		s.LogError(ctx, err, "Failed to save daily operation")
		return nil, fmt.Errorf("failed to save daily operation: %w", err)
	}

	s.LogInfo(ctx, "Daily operation created", "daily_operation_id", op.DailyOperationID, "category", string(op.Category))
	return &op, nil
}

func (s *dailyOperationService) GetDailyOperation(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error) {
	return s.findDailyOperation(ctx, dailyOperationID)
}

func (s *dailyOperationService) UpdateDailyOperation(ctx context.Context, dailyOperationID string, req dto.UpdateDailyOperationRequest, updaterUserID string) (*domain.DailyOperation, error) {
	op, err := s.findDailyOperation(ctx, dailyOperationID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		op.Date = *req.Date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationFailedError("amount must be positive")
		}
		op.Amount = *req.Amount
	}
	if req.Category != nil {
		op.Category = *req.Category
	}
	if req.PaymentMethod != nil {
		op.PaymentMethod = *req.PaymentMethod
	}
	if req.Invoice != nil {
		op.Invoice = req.Invoice
	}
	if req.Notes != nil {
		op.Notes = req.Notes
	}
	op.LastUpdatedAt = time.Now()
	op.LastUpdatedBy = updaterUserID

	if err := s.dailyOperationRepo.UpdateDailyOperation(ctx, *op); err != nil {
		s.LogError(ctx, err, "Failed to update daily operation", "daily_operation_id", dailyOperationID)
		return nil, fmt.Errorf("failed to update daily operation: %w", err)
	}

	s.LogInfo(ctx, "Daily operation updated", "daily_operation_id", dailyOperationID)
	return op, nil
}

func (s *dailyOperationService) DeleteDailyOperation(ctx context.Context, dailyOperationID string) error {
	if _, err := s.findDailyOperation(ctx, dailyOperationID); err != nil {
		return err
	}
	if err := s.dailyOperationRepo.DeleteDailyOperation(ctx, dailyOperationID); err != nil {
		s.LogError(ctx, err, "Failed to delete daily operation", "daily_operation_id", dailyOperationID)
		return fmt.Errorf("failed to delete daily operation: %w", err)
	}
	s.LogInfo(ctx, "Daily operation deleted", "daily_operation_id", dailyOperationID)
	return nil
}

func (s *dailyOperationService) ListDailyOperationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.DailyOperation, int64, error) {
	if err := uuid.Validate(organizationID); err != nil {
		return nil, 0, apperrors.NewBadRequestError("invalid organization ID format")
	}
	ops, total, err := s.dailyOperationRepo.ListDailyOperationsByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily operations", "organization_id", organizationID)
		return nil, 0, fmt.Errorf("failed to list daily operations: %w", err)
	}
	return ops, total, nil
}

func (s *dailyOperationService) findDailyOperation(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error) {
	if err := uuid.Validate(dailyOperationID); err != nil {
		return nil, apperrors.NewBadRequestError("invalid daily operation ID format")
	}
	op, err := s.dailyOperationRepo.FindDailyOperationByID(ctx, dailyOperationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find daily operation", "daily_operation_id", dailyOperationID)
		return nil, fmt.Errorf("failed to find daily operation: %w", err)
	}
	if op == nil {
		return nil, apperrors.NewNotFoundError("daily operation not found")
	}
	return op, nil
}
