package grid

import (
	"fmt"
	"strings"
)

// BuildRows produces the page query for a normalized filter. The inner query
// collapses join fan-out to one row per primary key; the outer query applies
// the allow-listed sort with an unconditional `id ASC` tiebreak so pagination
// stays stable when the sort column has ties.
func (r *Registry) BuildRows(f Filter) (string, []any) {
	where, args := r.predicates(f)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM (SELECT DISTINCT ON (%s) %s FROM %s", r.IDColumn, r.Select, r.From)
	if where != "" {
		fmt.Fprintf(&b, " WHERE %s", where)
	}
	fmt.Fprintf(&b, " ORDER BY %s) g", r.IDColumn)
	fmt.Fprintf(&b, " ORDER BY g.%s %s, g.id ASC", r.Sortable[f.OrderBy], f.OrderDirection)
	if !f.Unbounded {
		args = append(args, f.PageSize, f.Offset())
		fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	return b.String(), args
}

// BuildCount produces the total-count query over the same filtered set,
// before pagination.
func (r *Registry) BuildCount(f Filter) (string, []any) {
	where, args := r.predicates(f)

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT COUNT(DISTINCT %s) FROM %s", r.IDColumn, r.From)
	if where != "" {
		fmt.Fprintf(&b, " WHERE %s", where)
	}
	return b.String(), args
}

// predicates assembles the WHERE clause: base guard AND free-text OR-group
// AND per-column IN lists AND inclusive date range. All request values are
// bind parameters.
func (r *Registry) predicates(f Filter) (string, []any) {
	var conds []string
	var args []any

	if r.BaseWhere != "" {
		conds = append(conds, r.BaseWhere)
	}

	if f.SearchText != "" {
		args = append(args, "%"+f.SearchText+"%")
		matches := make([]string, len(r.Searchable))
		for i, col := range r.Searchable {
			matches[i] = fmt.Sprintf("%s ILIKE $%d", col, len(args))
		}
		conds = append(conds, "("+strings.Join(matches, " OR ")+")")
	}

	for _, name := range sortedKeys(f.ColumnFilters) {
		args = append(args, f.ColumnFilters[name])
		conds = append(conds, fmt.Sprintf("%s = ANY($%d)", r.Filterable[name], len(args)))
	}

	if f.DateRange != nil {
		if f.DateRange.Start != nil {
			args = append(args, *f.DateRange.Start)
			conds = append(conds, fmt.Sprintf("%s >= $%d", r.DateColumn, len(args)))
		}
		if f.DateRange.End != nil {
			args = append(args, *f.DateRange.End)
			conds = append(conds, fmt.Sprintf("%s <= $%d", r.DateColumn, len(args)))
		}
	}

	return strings.Join(conds, " AND "), args
}
