package types

import "strings"

// Paging bounds and defaults shared by all list queries.
const (
	DefaultLimit = 50
	MaxLimit     = 100

	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultSort = "created_on"
)

// ListParams are the common paging and ordering controls for list queries.
// Zero values are not valid; construct with NewListParams and override.
type ListParams struct {
	Page           int
	Limit          int
	Sort           string
	Order          string
	IncludeDeleted bool
}

// NewListParams returns ListParams with the standard defaults: first page,
// 50 rows, newest first.
func NewListParams() ListParams {
	return ListParams{
		Page:  1,
		Limit: DefaultLimit,
		Sort:  DefaultSort,
		Order: OrderDesc,
	}
}

// Validate checks the paging window and sort order. The sort field itself is
// validated against the per-entity whitelist by the storage layer.
func (p ListParams) Validate() error {
	if p.Page < 1 {
		return &ValidationError{Field: "page", Message: "must be at least 1"}
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return &ValidationError{Field: "limit", Message: "must be between 1 and 100"}
	}
	switch strings.ToLower(p.Order) {
	case OrderAsc, OrderDesc:
		return nil
	default:
		return &ValidationError{Field: "order", Message: "must be asc or desc"}
	}
}

// Offset returns the row offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the envelope describing one page of results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count as ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Page is one page of rows plus its pagination envelope.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
