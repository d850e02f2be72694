package dto

import (
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
)

// --- Saudization DTOs ---

// CreateSaudizationRequest defines data for a saudization compliance record.
// DeportationDate is required when deportationStatus is "deported"; the
// service enforces the conditional rule.
type CreateSaudizationRequest struct {
	EmployeeName      string                   `json:"employeeName" binding:"required"`
	WorkPermitStatus  domain.WorkPermitStatus  `json:"workPermitStatus" binding:"required,oneof=valid expired in_progress"`
	DeportationStatus domain.DeportationStatus `json:"deportationStatus" binding:"required,oneof=none in_progress deported"`
	DeportationDate   *time.Time               `json:"deportationDate"`
}

// UpdateSaudizationRequest defines the updatable saudization fields.
type UpdateSaudizationRequest struct {
	EmployeeName      *string                   `json:"employeeName"`
	WorkPermitStatus  *domain.WorkPermitStatus  `json:"workPermitStatus" binding:"omitempty,oneof=valid expired in_progress"`
	DeportationStatus *domain.DeportationStatus `json:"deportationStatus" binding:"omitempty,oneof=none in_progress deported"`
	DeportationDate   *time.Time                `json:"deportationDate"`
}

// SaudizationResponse defines data returned for a saudization record.
type SaudizationResponse struct {
	SaudizationID     string                   `json:"saudizationID"`
	OrganizationID    string                   `json:"organizationID"`
	EmployeeName      string                   `json:"employeeName"`
	WorkPermitStatus  domain.WorkPermitStatus  `json:"workPermitStatus"`
	DeportationStatus domain.DeportationStatus `json:"deportationStatus"`
	DeportationDate   *time.Time               `json:"deportationDate,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
}

// ToSaudizationResponse converts a domain saudization record to its DTO.
func ToSaudizationResponse(s *domain.Saudization) SaudizationResponse {
	return SaudizationResponse{
		SaudizationID:     s.SaudizationID,
		OrganizationID:    s.OrganizationID,
		EmployeeName:      s.EmployeeName,
		WorkPermitStatus:  s.WorkPermitStatus,
		DeportationStatus: s.DeportationStatus,
		DeportationDate:   s.DeportationDate,
		CreatedAt:         s.CreatedAt,
	}
}

// ToSaudizationListResponse converts a page of saudization records.
func ToSaudizationListResponse(records []domain.Saudization) []SaudizationResponse {
	list := make([]SaudizationResponse, len(records))
	for i := range records {
		list[i] = ToSaudizationResponse(&records[i])
	}
	return list
}
