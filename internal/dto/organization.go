package dto

import (
	"time"

	"github.com/maktab-hr/manpower_office_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Organization DTOs ---

// CreateOrganizationRequest defines data for registering a new organization.
type CreateOrganizationRequest struct {
	OwnerName              string          `json:"ownerName" binding:"required"`
	OwnerNationalID        string          `json:"ownerNationalID" binding:"required"`
	OwnerCode              string          `json:"ownerCode"`
	OwnerBirthDate         *time.Time      `json:"ownerBirthDate"`
	SubscriptionStart      *time.Time      `json:"subscriptionStart"`
	SubscriptionEnd        *time.Time      `json:"subscriptionEnd"`
	CommercialRecordNumber string          `json:"commercialRecordNumber"`
	CommercialRecordExpiry *time.Time      `json:"commercialRecordExpiry"`
	SponsorAmount          decimal.Decimal `json:"sponsorAmount"`
}

// UpdateOrganizationRequest defines the updatable organization fields.
type UpdateOrganizationRequest struct {
	OwnerName              *string          `json:"ownerName"`
	OwnerNationalID        *string          `json:"ownerNationalID"`
	OwnerCode              *string          `json:"ownerCode"`
	OwnerBirthDate         *time.Time       `json:"ownerBirthDate"`
	SubscriptionStart      *time.Time       `json:"subscriptionStart"`
	SubscriptionEnd        *time.Time       `json:"subscriptionEnd"`
	CommercialRecordNumber *string          `json:"commercialRecordNumber"`
	CommercialRecordExpiry *time.Time       `json:"commercialRecordExpiry"`
	SponsorAmount          *decimal.Decimal `json:"sponsorAmount"`
}

// OrganizationResponse defines data returned for an organization, including
// the derived sponsor transfer total.
type OrganizationResponse struct {
	OrganizationID            string          `json:"organizationID"`
	OwnerName                 string          `json:"ownerName"`
	OwnerNationalID           string          `json:"ownerNationalID"`
	OwnerCode                 string          `json:"ownerCode"`
	OwnerBirthDate            *time.Time      `json:"ownerBirthDate"`
	SubscriptionStart         *time.Time      `json:"subscriptionStart"`
	SubscriptionEnd           *time.Time      `json:"subscriptionEnd"`
	CommercialRecordNumber    string          `json:"commercialRecordNumber"`
	CommercialRecordExpiry    *time.Time      `json:"commercialRecordExpiry"`
	SponsorAmount             decimal.Decimal `json:"sponsorAmount"`
	TransferredToSponsorTotal decimal.Decimal `json:"transferredToSponsorTotal"`
	CreatedAt                 time.Time       `json:"createdAt"`
	LastUpdatedAt             time.Time       `json:"lastUpdatedAt"`
}

// ToOrganizationResponse converts an enriched organization to its DTO.
func ToOrganizationResponse(o *domain.OrganizationWithTransfers) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:            o.OrganizationID,
		OwnerName:                 o.OwnerName,
		OwnerNationalID:           o.OwnerNationalID,
		OwnerCode:                 o.OwnerCode,
		OwnerBirthDate:            o.OwnerBirthDate,
		SubscriptionStart:         o.SubscriptionStart,
		SubscriptionEnd:           o.SubscriptionEnd,
		CommercialRecordNumber:    o.CommercialRecordNumber,
		CommercialRecordExpiry:    o.CommercialRecordExpiry,
		SponsorAmount:             o.SponsorAmount,
		TransferredToSponsorTotal: o.TransferredToSponsorTotal,
		CreatedAt:                 o.CreatedAt,
		LastUpdatedAt:             o.LastUpdatedAt,
	}
}

// ToOrganizationListResponse converts a page of enriched organizations.
func ToOrganizationListResponse(orgs []domain.OrganizationWithTransfers) []OrganizationResponse {
	list := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		list[i] = ToOrganizationResponse(&orgs[i])
	}
	return list
}
