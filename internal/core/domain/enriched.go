package domain

import "github.com/shopspring/decimal"

// EmployeeWithTotals pairs an employee row with its computed financial totals.
// The totals are derived per request; they never exist in the store.
type EmployeeWithTotals struct {
	Employee
	Totals EmployeeTotals `json:"totals"`
}

// OrganizationWithTransfers pairs an organization row with the sum of all
// amounts transferred to its sponsor.
type OrganizationWithTransfers struct {
	Organization
	TransferredToSponsorTotal decimal.Decimal `json:"transferredToSponsorTotal"`
}
