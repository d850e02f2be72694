package domain

import "time"

// WorkPermitStatus tracks the state of a saudization work permit.
type WorkPermitStatus string

const (
	WorkPermitValid      WorkPermitStatus = "valid"
	WorkPermitExpired    WorkPermitStatus = "expired"
	WorkPermitInProgress WorkPermitStatus = "in_progress"
)

// DeportationStatus tracks the deportation state of a saudization record.
type DeportationStatus string

const (
	DeportationNone       DeportationStatus = "none"
	DeportationInProgress DeportationStatus = "in_progress"
	DeportationDeported   DeportationStatus = "deported"
)

// Saudization is a compliance-tracking row per named employee under an
// organization. EmployeeName is free text, not a reference.
type Saudization struct {
	SaudizationID     string            `json:"saudizationID" db:"saudization_id"`
	OrganizationID    string            `json:"organizationID" db:"organization_id"`
	EmployeeName      string            `json:"employeeName" db:"employee_name"`
	WorkPermitStatus  WorkPermitStatus  `json:"workPermitStatus" db:"work_permit_status"`
	DeportationStatus DeportationStatus `json:"deportationStatus" db:"deportation_status"`
	DeportationDate   *time.Time        `json:"deportationDate" db:"deportation_date"`
	AuditFields
}
