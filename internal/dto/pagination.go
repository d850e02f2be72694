package dto

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListParams carries the page/limit query parameters of a list request.
// Non-numeric values bind to zero and are normalized to the defaults.
type ListParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize floors page and limit at 1, applies the 1/10 defaults and caps
// limit so a single page cannot drain the table.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// Offset converts the normalized page/limit pair into a row offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the envelope accompanying every list response. Total reflects
// the filtered count, so totalPages is derived after search filters apply.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Next       *int  `json:"next"`
	Previous   *int  `json:"previous"`
}

// NewPagination derives the pagination envelope for a filtered total.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	p := Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		p.Next = &next
	}
	if page > 1 {
		previous := page - 1
		p.Previous = &previous
	}
	return p
}
