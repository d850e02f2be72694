package dto

import (
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Employee DTOs ---

// CreateEmployeeRequest defines data for creating an employee or vacancy.
// Employee-type records additionally require nationality, phone, residence
// permit number/expiry and work card issue date; this conditional rule is
// enforced by the service.
type CreateEmployeeRequest struct {
	OrganizationID        string              `json:"organizationID" binding:"required,uuid"`
	Type                  domain.EmployeeType `json:"type" binding:"required,oneof=employee vacancy"`
	Name                  string              `json:"name" binding:"required"`
	Nationality           *string             `json:"nationality"`
	Phone                 *string             `json:"phone"`
	ResidencePermitNumber *string             `json:"residencePermitNumber"`
	ResidencePermitExpiry *time.Time          `json:"residencePermitExpiry"`
	WorkCardIssueDate     *time.Time          `json:"workCardIssueDate"`
	HasArrived            bool                `json:"hasArrived"`
	IsSold                bool                `json:"isSold"`
	RequestedAmount       decimal.Decimal     `json:"requestedAmount"`
}

// UpdateEmployeeRequest defines the updatable employee fields.
type UpdateEmployeeRequest struct {
	Name                  *string          `json:"name"`
	Nationality           *string          `json:"nationality"`
	Phone                 *string          `json:"phone"`
	ResidencePermitNumber *string          `json:"residencePermitNumber"`
	ResidencePermitExpiry *time.Time       `json:"residencePermitExpiry"`
	WorkCardIssueDate     *time.Time       `json:"workCardIssueDate"`
	HasArrived            *bool            `json:"hasArrived"`
	IsSold                *bool            `json:"isSold"`
	RequestedAmount       *decimal.Decimal `json:"requestedAmount"`
}

// ListEmployeesParams are the query parameters of the employee listing.
type ListEmployeesParams struct {
	ListParams
	Search       string `form:"search"`
	Organization string `form:"organization"`
}

// EmployeeResponse defines data returned for an employee row. The four
// computed totals are merged flat onto the row, as the dashboard expects.
type EmployeeResponse struct {
	EmployeeID            string              `json:"employeeID"`
	OrganizationID        string              `json:"organizationID"`
	Type                  domain.EmployeeType `json:"type"`
	Name                  string              `json:"name"`
	Nationality           *string             `json:"nationality,omitempty"`
	Phone                 *string             `json:"phone,omitempty"`
	ResidencePermitNumber *string             `json:"residencePermitNumber,omitempty"`
	ResidencePermitExpiry *time.Time          `json:"residencePermitExpiry,omitempty"`
	WorkCardIssueDate     *time.Time          `json:"workCardIssueDate,omitempty"`
	HasArrived            bool                `json:"hasArrived"`
	IsSold                bool                `json:"isSold"`
	RequestedAmount       decimal.Decimal     `json:"requestedAmount"`
	TotalRevenue          decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses         decimal.Decimal     `json:"totalExpenses"`
	RevenueRemaining      decimal.Decimal     `json:"revenueRemaining"`
	Remaining             decimal.Decimal     `json:"remaining"`
	CreatedAt             time.Time           `json:"createdAt"`
	LastUpdatedAt         time.Time           `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts an enriched employee to its DTO.
func ToEmployeeResponse(e *domain.EmployeeWithTotals) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:            e.EmployeeID,
		OrganizationID:        e.OrganizationID,
		Type:                  e.Type,
		Name:                  e.Name,
		Nationality:           e.Nationality,
		Phone:                 e.Phone,
		ResidencePermitNumber: e.ResidencePermitNumber,
		ResidencePermitExpiry: e.ResidencePermitExpiry,
		WorkCardIssueDate:     e.WorkCardIssueDate,
		HasArrived:            e.HasArrived,
		IsSold:                e.IsSold,
		RequestedAmount:       e.RequestedAmount,
		TotalRevenue:          e.Totals.TotalRevenue,
		TotalExpenses:         e.Totals.TotalExpenses,
		RevenueRemaining:      e.Totals.RevenueRemaining,
		Remaining:             e.Totals.Remaining,
		CreatedAt:             e.CreatedAt,
		LastUpdatedAt:         e.LastUpdatedAt,
	}
}

// ToEmployeeListResponse converts a page of enriched employees.
func ToEmployeeListResponse(employees []domain.EmployeeWithTotals) []EmployeeResponse {
	list := make([]EmployeeResponse, len(employees))
	for i := range employees {
		list[i] = ToEmployeeResponse(&employees[i])
	}
	return list
}
