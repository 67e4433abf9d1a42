// Package grid implements the shared filter/sort/page query engine behind
// every "list with search" endpoint. Each entity contributes a Registry (its
// allow-listed columns); the engine composes a parameter-bound SQL plan and a
// total count over the filtered set.
package grid

import (
	"time"
)

type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

const (
	DefaultOrderBy  = "date_created"
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// DateRange restricts the registry's date column to [Start, End] inclusive.
// A nil bound leaves that side open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Filter is the request shape shared by all grids. Zero values mean "use the
// default": page 1, page size 10, date_created DESC.
//
// Unbounded disables pagination for the query; it is set internally by export
// paths and is never bound from a request.
type Filter struct {
	SearchText     string
	ColumnFilters  map[string][]string
	DateRange      *DateRange
	PageNumber     int
	PageSize       int
	OrderBy        string
	OrderDirection string
	Unbounded      bool
}

// Page is one page of grid results. TotalRecords counts the full filtered
// set, independent of pagination.
type Page[T any] struct {
	Results      []T
	TotalRecords int
	PageNumber   int
	PageSize     int
}

// Offset returns the 0-based row offset for the page.
func (f Filter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}
