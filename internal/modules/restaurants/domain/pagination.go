package domain

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize matches the page size the restaurant service was built around.
	DefaultPageSize = 10
	maxPageSize     = 100
)

// PagedQuery carries the paging parameters of a list request.
type PagedQuery struct {
	Page  int
	Limit int
}

// Normalize returns a sanitized copy applying defaults and bounds.
func (q PagedQuery) Normalize() PagedQuery {
	normalized := q
	if normalized.Page <= 0 {
		normalized.Page = 1
	}
	if normalized.Limit <= 0 {
		normalized.Limit = DefaultPageSize
	}
	if normalized.Limit > maxPageSize {
		normalized.Limit = maxPageSize
	}
	return normalized
}

// ToURLValues returns normalized URL query parameters ready for REST calls.
func (q PagedQuery) ToURLValues() url.Values {
	normalized := q.Normalize()
	values := url.Values{}
	values.Set("page", strconv.Itoa(normalized.Page))
	values.Set("limit", strconv.Itoa(normalized.Limit))
	return values
}

// Pagination tracks the selected page and the page count last reported by the service.
// TotalPages is only ever ingested from a list response.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// InitialPagination is the state before the first successful fetch.
func InitialPagination() Pagination {
	return Pagination{CurrentPage: 1, TotalPages: 1}
}

// Accepts reports whether page lies within [1, TotalPages].
func (p Pagination) Accepts(page int) bool {
	return page >= 1 && page <= p.TotalPages
}

// TotalPagesFor derives a page count from an item total, never returning less than one.
func TotalPagesFor(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}
