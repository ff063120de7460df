package models

// Pagination holds the page/limit query params accepted by list endpoints.
// Page is 1-based; limit is clamped to 1..50 with a default of 10.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPagination clamps raw query values into a valid Pagination
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = 10
	case limit > 50:
		limit = 50
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset returns the row offset for the current page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
