package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is the tenant entity that owns employees and operations.
type Organization struct {
	OrganizationID         string          `json:"organizationID" db:"organization_id"`
	OwnerName              string          `json:"ownerName" db:"owner_name"`
	OwnerNationalID        string          `json:"ownerNationalID" db:"owner_national_id"`
	OwnerCode              string          `json:"ownerCode" db:"owner_code"`
	OwnerBirthDate         *time.Time      `json:"ownerBirthDate" db:"owner_birth_date"`
	SubscriptionStart      *time.Time      `json:"subscriptionStart" db:"subscription_start"`
	SubscriptionEnd        *time.Time      `json:"subscriptionEnd" db:"subscription_end"`
	CommercialRecordNumber string          `json:"commercialRecordNumber" db:"commercial_record_number"`
	CommercialRecordExpiry *time.Time      `json:"commercialRecordExpiry" db:"commercial_record_expiry"`
	SponsorAmount          decimal.Decimal `json:"sponsorAmount" db:"sponsor_amount"`
	AuditFields
}
