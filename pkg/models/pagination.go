package models

// Pagination defaults and caps shared by all list endpoints.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// PageMeta is the pagination envelope returned with every list response.
type PageMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageMeta computes the envelope for a page of a result set of total rows.
func NewPageMeta(page, perPage, total int) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return PageMeta{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// ClampPage normalizes raw pagination values to their allowed ranges.
func ClampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
