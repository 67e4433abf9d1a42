package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/grid"
)

// queryGrid runs one grid request end to end: normalize/validate the filter,
// count the full filtered set, then fetch the page. The count runs first so a
// page past the end still reports the correct total with empty results.
func queryGrid[T any](ctx context.Context, pool *pgxpool.Pool, reg *grid.Registry, f grid.Filter, scan func(pgx.Rows) (T, error)) (grid.Page[T], error) {
	f, err := reg.Normalize(f)
	if err != nil {
		return grid.Page[T]{}, err
	}

	countSQL, countArgs := reg.BuildCount(f)
	var total int
	if err := pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return grid.Page[T]{}, fmt.Errorf("counting grid rows: %w", err)
	}

	page := grid.Page[T]{
		Results:      []T{},
		TotalRecords: total,
		PageNumber:   f.PageNumber,
		PageSize:     f.PageSize,
	}
	if pastEnd(f, total) {
		return page, nil
	}

	rowsSQL, rowsArgs := reg.BuildRows(f)
	rows, err := pool.Query(ctx, rowsSQL, rowsArgs...)
	if err != nil {
		return grid.Page[T]{}, fmt.Errorf("querying grid rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return grid.Page[T]{}, err
		}
		page.Results = append(page.Results, row)
	}
	if err := rows.Err(); err != nil {
		return grid.Page[T]{}, err
	}
	return page, nil
}

// pastEnd reports whether the normalized filter's page starts at or beyond
// the filtered set, in which case the row query is skipped and the page comes
// back empty with the true total.
func pastEnd(f grid.Filter, total int) bool {
	return total == 0 || f.Offset() >= total
}
