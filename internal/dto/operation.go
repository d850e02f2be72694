package dto

import (
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Daily operation DTOs ---

// CreateDailyOperationRequest defines data for recording an employee-level
// operation. The employee must belong to the stated organization; the service
// validates the reference.
type CreateDailyOperationRequest struct {
	OrganizationID string                   `json:"organizationID" binding:"required,uuid"`
	EmployeeID     string                   `json:"employeeID" binding:"required,uuid"`
	Date           time.Time                `json:"date" binding:"required,notfuture"`
	Amount         decimal.Decimal          `json:"amount" binding:"required"`
	Category       domain.OperationCategory `json:"category" binding:"required,oneof=revenue expense"`
	PaymentMethod  domain.PaymentMethod     `json:"paymentMethod" binding:"required,oneof=cash transfer cheque"`
	Invoice        *string                  `json:"invoice"`
	Notes          *string                  `json:"notes"`
}

// UpdateDailyOperationRequest defines the updatable daily operation fields.
type UpdateDailyOperationRequest struct {
	Date          *time.Time                `json:"date" binding:"omitempty,notfuture"`
	Amount        *decimal.Decimal          `json:"amount"`
	Category      *domain.OperationCategory `json:"category" binding:"omitempty,oneof=revenue expense"`
	PaymentMethod *domain.PaymentMethod     `json:"paymentMethod" binding:"omitempty,oneof=cash transfer cheque"`
	Invoice       *string                   `json:"invoice"`
	Notes         *string                   `json:"notes"`
}

// DailyOperationResponse defines data returned for a daily operation.
type DailyOperationResponse struct {
	DailyOperationID string                   `json:"dailyOperationID"`
	OrganizationID   string                   `json:"organizationID"`
	EmployeeID       string                   `json:"employeeID"`
	Date             time.Time                `json:"date"`
	Amount           decimal.Decimal          `json:"amount"`
	Category         domain.OperationCategory `json:"category"`
	PaymentMethod    domain.PaymentMethod     `json:"paymentMethod"`
	Invoice          *string                  `json:"invoice,omitempty"`
	Notes            *string                  `json:"notes,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
}

// ToDailyOperationResponse converts a domain daily operation to its DTO.
func ToDailyOperationResponse(op *domain.DailyOperation) DailyOperationResponse {
	return DailyOperationResponse{
		DailyOperationID: op.DailyOperationID,
		OrganizationID:   op.OrganizationID,
		EmployeeID:       op.EmployeeID,
		Date:             op.Date,
		Amount:           op.Amount,
		Category:         op.Category,
		PaymentMethod:    op.PaymentMethod,
		Invoice:          op.Invoice,
		Notes:            op.Notes,
		CreatedAt:        op.CreatedAt,
	}
}

// ToDailyOperationListResponse converts a page of daily operations.
func ToDailyOperationListResponse(ops []domain.DailyOperation) []DailyOperationResponse {
	list := make([]DailyOperationResponse, len(ops))
	for i := range ops {
		list[i] = ToDailyOperationResponse(&ops[i])
	}
	return list
}

// --- Office operation DTOs ---

// CreateOfficeOperationRequest defines data for recording an office-level operation.
type CreateOfficeOperationRequest struct {
	Date          time.Time                `json:"date" binding:"required,notfuture"`
	Amount        decimal.Decimal          `json:"amount"`
	Type          domain.OperationCategory `json:"type" binding:"required,oneof=revenue expense"`
	PaymentMethod domain.PaymentMethod     `json:"paymentMethod" binding:"required,oneof=cash transfer cheque"`
	Notes         *string                  `json:"notes"`
}

// UpdateOfficeOperationRequest defines the updatable office operation fields.
type UpdateOfficeOperationRequest struct {
	Date          *time.Time                `json:"date" binding:"omitempty,notfuture"`
	Amount        *decimal.Decimal          `json:"amount"`
	Type          *domain.OperationCategory `json:"type" binding:"omitempty,oneof=revenue expense"`
	PaymentMethod *domain.PaymentMethod     `json:"paymentMethod" binding:"omitempty,oneof=cash transfer cheque"`
	Notes         *string                   `json:"notes"`
}

// OfficeOperationResponse defines data returned for an office operation.
type OfficeOperationResponse struct {
	OfficeOperationID string                   `json:"officeOperationID"`
	Date              time.Time                `json:"date"`
	Amount            decimal.Decimal          `json:"amount"`
	Type              domain.OperationCategory `json:"type"`
	PaymentMethod     domain.PaymentMethod     `json:"paymentMethod"`
	Notes             *string                  `json:"notes,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
}

// ToOfficeOperationResponse converts a domain office operation to its DTO.
func ToOfficeOperationResponse(op *domain.OfficeOperation) OfficeOperationResponse {
	return OfficeOperationResponse{
		OfficeOperationID: op.OfficeOperationID,
		Date:              op.Date,
		Amount:            op.Amount,
		Type:              op.Type,
		PaymentMethod:     op.PaymentMethod,
		Notes:             op.Notes,
		CreatedAt:         op.CreatedAt,
	}
}

// ToOfficeOperationListResponse converts a page of office operations.
func ToOfficeOperationListResponse(ops []domain.OfficeOperation) []OfficeOperationResponse {
	list := make([]OfficeOperationResponse, len(ops))
	for i := range ops {
		list[i] = ToOfficeOperationResponse(&ops[i])
	}
	return list
}

// --- Transfer (organization daily operation) DTOs ---

// CreateTransferRequest defines data for recording a sponsor transfer.
type CreateTransferRequest struct {
	Date   time.Time       `json:"date" binding:"required,notfuture"`
	Amount decimal.Decimal `json:"amount"`
	Notes  *string         `json:"notes"`
}

// UpdateTransferRequest defines the updatable transfer fields.
type UpdateTransferRequest struct {
	Date   *time.Time       `json:"date" binding:"omitempty,notfuture"`
	Amount *decimal.Decimal `json:"amount"`
	Notes  *string          `json:"notes"`
}

// TransferResponse defines data returned for a sponsor transfer.
type TransferResponse struct {
	TransferID     string          `json:"transferID"`
	OrganizationID string          `json:"organizationID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToTransferResponse converts a domain transfer to its DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:     t.TransferID,
		OrganizationID: t.OrganizationID,
		Date:           t.Date,
		Amount:         t.Amount,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTransferListResponse converts a page of transfers.
func ToTransferListResponse(transfers []domain.Transfer) []TransferResponse {
	list := make([]TransferResponse, len(transfers))
	for i := range transfers {
		list[i] = ToTransferResponse(&transfers[i])
	}
	return list
}
