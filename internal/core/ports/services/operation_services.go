package services

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/maktab-hr/manpower_office_app/internal/dto"
)

// DailyOperationSvc defines operations over employee-level daily operations.
type DailyOperationSvc interface {
	CreateDailyOperation(ctx context.Context, req dto.CreateDailyOperationRequest, creatorUserID string) (*domain.DailyOperation, error)
	GetDailyOperation(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error)
	UpdateDailyOperation(ctx context.Context, dailyOperationID string, req dto.UpdateDailyOperationRequest, updaterUserID string) (*domain.DailyOperation, error)
	DeleteDailyOperation(ctx context.Context, dailyOperationID string) error
	ListDailyOperationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.DailyOperation, int64, error)
}

// OfficeOperationSvc defines operations over office-level operations.
type OfficeOperationSvc interface {
	CreateOfficeOperation(ctx context.Context, req dto.CreateOfficeOperationRequest, creatorUserID string) (*domain.OfficeOperation, error)
	GetOfficeOperation(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error)
	UpdateOfficeOperation(ctx context.Context, officeOperationID string, req dto.UpdateOfficeOperationRequest, updaterUserID string) (*domain.OfficeOperation, error)
	DeleteOfficeOperation(ctx context.Context, officeOperationID string) error
	ListOfficeOperations(ctx context.Context, limit, offset int) ([]domain.OfficeOperation, int64, error)
}

// TransferSvc defines operations over sponsor transfers.
type TransferSvc interface {
	CreateTransfer(ctx context.Context, organizationID string, req dto.CreateTransferRequest, creatorUserID string) (*domain.Transfer, error)
	GetTransfer(ctx context.Context, transferID string) (*domain.Transfer, error)
	UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest, updaterUserID string) (*domain.Transfer, error)
	DeleteTransfer(ctx context.Context, transferID string) error
	ListTransfersByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Transfer, int64, error)
}
