package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationCategory classifies an operation as money in or money out.
type OperationCategory string

const (
	CategoryRevenue OperationCategory = "revenue"
	CategoryExpense OperationCategory = "expense"
)

// PaymentMethod records how an operation was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCheque   PaymentMethod = "cheque"
)

// DailyOperation is a dated revenue/expense entry attributed to one employee
// within one organization. The employee must belong to that organization.
type DailyOperation struct {
	DailyOperationID string            `json:"dailyOperationID" db:"daily_operation_id"`
	OrganizationID   string            `json:"organizationID" db:"organization_id"`
	EmployeeID       string            `json:"employeeID" db:"employee_id"`
	Date             time.Time         `json:"date" db:"date"`
	Amount           decimal.Decimal   `json:"amount" db:"amount"`
	Category         OperationCategory `json:"category" db:"category"`
	PaymentMethod    PaymentMethod     `json:"paymentMethod" db:"payment_method"`
	Invoice          *string           `json:"invoice" db:"invoice"`
	Notes            *string           `json:"notes" db:"notes"`
	AuditFields
}

// OfficeOperation is a dated revenue/expense entry at the office level, not
// attributed to any organization or employee.
type OfficeOperation struct {
	OfficeOperationID string            `json:"officeOperationID" db:"office_operation_id"`
	Date              time.Time         `json:"date" db:"date"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	Type              OperationCategory `json:"type" db:"type"`
	PaymentMethod     PaymentMethod     `json:"paymentMethod" db:"payment_method"`
	Notes             *string           `json:"notes" db:"notes"`
	AuditFields
}

// Transfer is an organization daily operation: a dated amount moved to or from
// the organization's sponsor, independent of employee-level operations.
type Transfer struct {
	TransferID     string          `json:"transferID" db:"transfer_id"`
	OrganizationID string          `json:"organizationID" db:"organization_id"`
	Date           time.Time       `json:"date" db:"date"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Notes          *string         `json:"notes" db:"notes"`
	AuditFields
}
