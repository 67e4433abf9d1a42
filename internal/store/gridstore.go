package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
)

type gridStore struct {
	pool *pgxpool.Pool
}

func newGridStore(pool *pgxpool.Pool) GridStore {
	return &gridStore{pool: pool}
}

func (s *gridStore) Opportunities(ctx context.Context, f grid.Filter) (grid.Page[model.OpportunityGridRow], error) {
	return queryGrid(ctx, s.pool, opportunityGridRegistry, f, func(rows pgx.Rows) (model.OpportunityGridRow, error) {
		var r model.OpportunityGridRow
		err := rows.Scan(&r.ID, &r.OpportunityID, &r.CustomerName, &r.ContactName,
			&r.Status, &r.OpportunityType, &r.ExpectedValue, &r.DateCreated)
		return r, err
	})
}

func (s *gridStore) Quotations(ctx context.Context, f grid.Filter) (grid.Page[model.QuotationGridRow], error) {
	return queryGrid(ctx, s.pool, quotationGridRegistry, f, func(rows pgx.Rows) (model.QuotationGridRow, error) {
		var r model.QuotationGridRow
		err := rows.Scan(&r.ID, &r.QuotationID, &r.CustomerName, &r.Version,
			&r.Status, &r.TotalAmount, &r.ValidTill, &r.DateCreated)
		return r, err
	})
}

func (s *gridStore) Demos(ctx context.Context, f grid.Filter) (grid.Page[model.DemoGridRow], error) {
	return queryGrid(ctx, s.pool, demoGridRegistry, f, func(rows pgx.Rows) (model.DemoGridRow, error) {
		var r model.DemoGridRow
		err := rows.Scan(&r.ID, &r.DemoID, &r.CustomerName, &r.DemoContact,
			&r.Status, &r.DemoDate, &r.DateCreated)
		return r, err
	})
}

func (s *gridStore) Orders(ctx context.Context, f grid.Filter) (grid.Page[model.OrderGridRow], error) {
	return queryGrid(ctx, s.pool, orderGridRegistry, f, func(rows pgx.Rows) (model.OrderGridRow, error) {
		var r model.OrderGridRow
		err := rows.Scan(&r.ID, &r.OrderID, &r.CustomerName,
			&r.Status, &r.TotalAmount, &r.DateCreated)
		return r, err
	})
}

func (s *gridStore) FilterOptions(ctx context.Context, entity, column string) ([]string, error) {
	reg, ok := gridRegistries[entity]
	if !ok {
		return nil, model.NewValidationError([]string{fmt.Sprintf("unknown grid entity %q", entity)})
	}
	expr, ok := reg.Filterable[column]
	if !ok {
		return nil, model.NewValidationError([]string{fmt.Sprintf("column %q is not filterable on %q", column, entity)})
	}

	sql := fmt.Sprintf(`SELECT DISTINCT %s FROM %s WHERE %s AND %s IS NOT NULL ORDER BY %s`,
		expr, reg.From, reg.BaseWhere, expr, expr)
	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
