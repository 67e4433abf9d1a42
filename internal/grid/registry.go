package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naveen06raj/erp-api/internal/model"
)

// Registry is one entity's contribution to the grid engine: its FROM clause
// and the allow-lists that bound what a request may search, filter, and sort
// on. SQL is only ever assembled from registry-owned fragments; request input
// reaches the database exclusively through bind parameters.
type Registry struct {
	// From is the table expression, including any joins, e.g.
	// "sales_lead sl LEFT JOIN geographical_divisions t ON ...".
	From string
	// Select is the projection list. Every column must carry an alias; the
	// primary key must be aliased "id" and sortable columns must appear here
	// so the outer ORDER BY can reference them.
	Select string
	// IDColumn is the qualified primary key, e.g. "sl.id". Rows are collapsed
	// to one per key even when joins fan out.
	IDColumn string
	// DateColumn is the physical timestamp expression DateRange applies to.
	DateColumn string
	// BaseWhere is always applied, typically the isactive guard.
	BaseWhere string
	// Sortable maps logical column names to select-list aliases.
	Sortable map[string]string
	// Filterable maps logical filter names to physical column expressions.
	Filterable map[string]string
	// Searchable lists the physical text columns free-text search matches.
	Searchable []string
}

// Normalize sanitizes and validates a filter against the registry's
// allow-lists. Placeholder values are stripped, defaults applied, and every
// violation is collected before returning, so a bad request reports all of
// its problems at once.
func (r *Registry) Normalize(f Filter) (Filter, error) {
	var violations []string

	if model.IsBlankOrPlaceholder(f.SearchText) {
		f.SearchText = ""
	} else {
		f.SearchText = strings.TrimSpace(f.SearchText)
	}

	if len(f.ColumnFilters) > 0 {
		cleaned := make(map[string][]string, len(f.ColumnFilters))
		for _, name := range sortedKeys(f.ColumnFilters) {
			if _, ok := r.Filterable[name]; !ok {
				violations = append(violations, fmt.Sprintf("unknown filter column %q", name))
				continue
			}
			values := make([]string, 0, len(f.ColumnFilters[name]))
			for _, v := range f.ColumnFilters[name] {
				if !model.IsBlankOrPlaceholder(v) {
					values = append(values, v)
				}
			}
			if len(values) > 0 {
				cleaned[name] = values
			}
		}
		f.ColumnFilters = cleaned
	}

	if f.DateRange != nil {
		switch {
		case f.DateRange.Start == nil && f.DateRange.End == nil:
			f.DateRange = nil
		case f.DateRange.Start != nil && f.DateRange.End != nil && f.DateRange.End.Before(*f.DateRange.Start):
			violations = append(violations, "date range end precedes start")
		}
	}

	if f.Unbounded {
		f.PageNumber = 1
		f.PageSize = 0
	} else {
		switch {
		case f.PageNumber == 0:
			f.PageNumber = 1
		case f.PageNumber < 1:
			violations = append(violations, fmt.Sprintf("page number must be >= 1, got %d", f.PageNumber))
		}

		switch {
		case f.PageSize == 0:
			f.PageSize = DefaultPageSize
		case f.PageSize < 1 || f.PageSize > MaxPageSize:
			violations = append(violations, fmt.Sprintf("page size must be between 1 and %d, got %d", MaxPageSize, f.PageSize))
		}
	}

	if f.OrderBy == "" {
		f.OrderBy = DefaultOrderBy
	}
	if _, ok := r.Sortable[f.OrderBy]; !ok {
		violations = append(violations, fmt.Sprintf("cannot sort by unknown column %q", f.OrderBy))
	}

	switch strings.ToUpper(f.OrderDirection) {
	case "":
		f.OrderDirection = string(Descending)
	case string(Ascending), string(Descending):
		f.OrderDirection = strings.ToUpper(f.OrderDirection)
	default:
		violations = append(violations, fmt.Sprintf("order direction must be ASC or DESC, got %q", f.OrderDirection))
	}

	if err := model.NewValidationError(violations); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
