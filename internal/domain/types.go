package domain

import (
	"slices"
	"strings"
)

// SortDirection orders a search result set. Anything that is not
// recognizably descending is treated as ascending.
type SortDirection string

const (
	Ascending  SortDirection = "Ascending"
	Descending SortDirection = "Descending"
)

// SQL returns the ORDER BY keyword for the direction.
func (d SortDirection) SQL() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// PagedRequest is embedded in every entity search request.
type PagedRequest struct {
	PageNumber    int           `json:"pageNumber" form:"pageNumber"`
	PageSize      int           `json:"pageSize" form:"pageSize"`
	SortColumn    string        `json:"sortColumn" form:"sortColumn"`
	SortDirection SortDirection `json:"sortDirection" form:"sortDirection"`
}

// Sanitize clamps paging values and falls back to defaultSort when the
// requested column is not whitelisted. Bad input is corrected, never
// rejected, so search endpoints cannot fail on odd parameter combinations.
func (r *PagedRequest) Sanitize(validSort []string, defaultSort string) {
	if r.PageNumber < 1 {
		r.PageNumber = 1
	}
	if r.PageSize < 1 {
		r.PageSize = 25
	}
	if r.PageSize > 500 {
		r.PageSize = 500
	}

	switch strings.ToLower(string(r.SortDirection)) {
	case "descending", "desc":
		r.SortDirection = Descending
	default:
		r.SortDirection = Ascending
	}

	if !slices.Contains(validSort, r.SortColumn) {
		r.SortColumn = defaultSort
	}
}

// Offset is the number of ranked rows preceding the requested page.
func (r PagedRequest) Offset() int {
	return (r.PageNumber - 1) * r.PageSize
}

// PagedResult is the envelope shared by all list endpoints.
type PagedResult[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// NewPagedResult fills the envelope. totalCount is the filtered set size
// regardless of which page was requested; items may be empty for a page
// past the end.
func NewPagedResult[T any](items []T, totalCount int, req PagedRequest) PagedResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if req.PageSize > 0 {
		totalPages = (totalCount + req.PageSize - 1) / req.PageSize
	}

	return PagedResult[T]{
		Items:           items,
		TotalCount:      totalCount,
		PageNumber:      req.PageNumber,
		PageSize:        req.PageSize,
		TotalPages:      totalPages,
		HasPreviousPage: req.PageNumber > 1,
		HasNextPage:     req.PageNumber < totalPages,
	}
}
