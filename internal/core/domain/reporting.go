package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeTotals are the derived per-employee sums over daily operations.
// Totals are always computed on read, never persisted.
type EmployeeTotals struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	RevenueRemaining decimal.Decimal `json:"revenueRemaining"` // totalRevenue - totalExpenses
	Remaining        decimal.Decimal `json:"remaining"`        // requestedAmount - totalRevenue
}

// OperationSums are the raw grouped sums returned by the store for one employee.
type OperationSums struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

// OrganizationTotals roll EmployeeTotals up across every employee of one organization.
type OrganizationTotals struct {
	TotalRequested        decimal.Decimal `json:"totalRequested"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	TotalExpenses         decimal.Decimal `json:"totalExpenses"`
	TotalRevenueRemaining decimal.Decimal `json:"totalRevenueRemaining"`
	TotalRemaining        decimal.Decimal `json:"totalRemaining"`
}

// FinancialSummary is a windowed revenue/expense/net block over one operations collection.
type FinancialSummary struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetAmount     decimal.Decimal `json:"netAmount"`
}

// EmployeeFinancials is the all-time employee financial block of the dashboard.
type EmployeeFinancials struct {
	TotalRequestedAmount decimal.Decimal `json:"totalRequestedAmount"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalRemaining       decimal.Decimal `json:"totalRemaining"`
}

// DashboardStats is the global dashboard snapshot. The counts are never
// windowed; only the two financial summaries honour the month/year filter.
type DashboardStats struct {
	OrganizationCount       int64              `json:"organizationCount"`
	EmployeeCount           int64              `json:"employeeCount"`
	VacancyCount            int64              `json:"vacancyCount"`
	AvailableSlots          int64              `json:"availableSlots"`
	DailyOperationCount     int64              `json:"dailyOperationCount"`
	OfficeOperationCount    int64              `json:"officeOperationCount"`
	ActiveUserCount         int64              `json:"activeUserCount"`
	ExpiredPermitCount      int64              `json:"expiredPermitCount"`
	ExpiringPermitCount     int64              `json:"expiringPermitCount"`
	OfficeOperationsSummary FinancialSummary   `json:"officeOperationsSummary"`
	DailyOperationsSummary  FinancialSummary   `json:"dailyOperationsSummary"`
	EmployeeFinancials      EmployeeFinancials `json:"employeeFinancials"`
}

// SeatsPerOrganization is the fixed employee capacity of one organization.
const SeatsPerOrganization = 4

// AvailableSlots computes the remaining employee seats across all
// organizations, floored at zero.
func AvailableSlots(organizationCount, employeeCount int64) int64 {
	slots := SeatsPerOrganization*organizationCount - employeeCount
	if slots < 0 {
		return 0
	}
	return slots
}

// DateWindow bounds a windowed financial query. A nil bound is unbounded.
// The window is inclusive on both ends: [From, To].
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

// WindowFor derives the date window from optional month and year filters.
// Month without year is ignored, matching the behaviour of the dashboard
// filter controls: month=1..12 and year together select that calendar month,
// year alone selects the whole calendar year, neither means all-time.
// Out-of-range values are dropped, never rejected: time.Date would otherwise
// normalize month=13 into January of the following year.
func WindowFor(month, year *int) DateWindow {
	if month != nil && (*month < 1 || *month > 12) {
		month = nil
	}
	if year != nil && (*year < 1000 || *year > 9999) {
		year = nil
	}
	if year == nil {
		return DateWindow{}
	}
	if month != nil {
		from := time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0).Add(-time.Millisecond)
		return DateWindow{From: &from, To: &to}
	}
	from := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0).Add(-time.Millisecond)
	return DateWindow{From: &from, To: &to}
}

// IsUnbounded reports whether the window has no bounds at all.
func (w DateWindow) IsUnbounded() bool {
	return w.From == nil && w.To == nil
}
