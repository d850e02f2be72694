package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeType discriminates actual staff members from open job slots.
type EmployeeType string

const (
	EmployeeTypeEmployee EmployeeType = "employee"
	EmployeeTypeVacancy  EmployeeType = "vacancy"
)

// Employee is either an actual staff member (type=employee) or an open slot
// (type=vacancy) under an organization. The permit/work-card fields are only
// populated for the employee type.
type Employee struct {
	EmployeeID            string          `json:"employeeID" db:"employee_id"`
	OrganizationID        string          `json:"organizationID" db:"organization_id"`
	Type                  EmployeeType    `json:"type" db:"type"`
	Name                  string          `json:"name" db:"name"`
	Nationality           *string         `json:"nationality" db:"nationality"`
	Phone                 *string         `json:"phone" db:"phone"`
	ResidencePermitNumber *string         `json:"residencePermitNumber" db:"residence_permit_number"`
	ResidencePermitExpiry *time.Time      `json:"residencePermitExpiry" db:"residence_permit_expiry"`
	WorkCardIssueDate     *time.Time      `json:"workCardIssueDate" db:"work_card_issue_date"`
	HasArrived            bool            `json:"hasArrived" db:"has_arrived"`
	IsSold                bool            `json:"isSold" db:"is_sold"`
	RequestedAmount       decimal.Decimal `json:"requestedAmount" db:"requested_amount"`
	AuditFields
}
