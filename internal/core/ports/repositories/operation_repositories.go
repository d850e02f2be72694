package repositories

import (
	"context"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// DailyOperationRepository defines persistence operations for employee-level
// daily operations.
type DailyOperationRepository interface {
	SaveDailyOperation(ctx context.Context, op domain.DailyOperation) error
	FindDailyOperationByID(ctx context.Context, dailyOperationID string) (*domain.DailyOperation, error)
	UpdateDailyOperation(ctx context.Context, op domain.DailyOperation) error
	DeleteDailyOperation(ctx context.Context, dailyOperationID string) error
	// ListDailyOperationsByOrganization returns one page plus the total count,
	// most recent first.
	ListDailyOperationsByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.DailyOperation, int64, error)
	CountDailyOperations(ctx context.Context) (int64, error)
	CountDailyOperationsByOrganization(ctx context.Context, organizationID string) (int64, error)
}

// OfficeOperationRepository defines persistence operations for office-level
// operations.
type OfficeOperationRepository interface {
	SaveOfficeOperation(ctx context.Context, op domain.OfficeOperation) error
	FindOfficeOperationByID(ctx context.Context, officeOperationID string) (*domain.OfficeOperation, error)
	UpdateOfficeOperation(ctx context.Context, op domain.OfficeOperation) error
	DeleteOfficeOperation(ctx context.Context, officeOperationID string) error
	ListOfficeOperations(ctx context.Context, limit, offset int) ([]domain.OfficeOperation, int64, error)
	CountOfficeOperations(ctx context.Context) (int64, error)
}

// TransferRepository defines persistence operations for organization daily
// operations (sponsor transfers).
type TransferRepository interface {
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
	FindTransferByID(ctx context.Context, transferID string) (*domain.Transfer, error)
	UpdateTransfer(ctx context.Context, transfer domain.Transfer) error
	DeleteTransfer(ctx context.Context, transferID string) error
	ListTransfersByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]domain.Transfer, int64, error)
}
