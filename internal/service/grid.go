package service

import (
	"context"

	"github.com/naveen06raj/erp-api/internal/cache"
	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

// GridService serves the per-entity grids and their filter dropdown options.
type GridService interface {
	Opportunities(ctx context.Context, f grid.Filter) (grid.Page[model.OpportunityGridRow], error)
	Quotations(ctx context.Context, f grid.Filter) (grid.Page[model.QuotationGridRow], error)
	Demos(ctx context.Context, f grid.Filter) (grid.Page[model.DemoGridRow], error)
	Orders(ctx context.Context, f grid.Filter) (grid.Page[model.OrderGridRow], error)
	FilterOptions(ctx context.Context, entity, column string) ([]string, error)
}

type gridService struct {
	gridStore store.GridStore
	options   *cache.OptionsCache
}

// NewGridService wires the grid store behind the options cache. A nil cache
// is fine; filter options then always come straight from the database.
func NewGridService(gridStore store.GridStore, options *cache.OptionsCache) GridService {
	return &gridService{
		gridStore: gridStore,
		options:   options,
	}
}

func (s *gridService) Opportunities(ctx context.Context, f grid.Filter) (grid.Page[model.OpportunityGridRow], error) {
	return s.gridStore.Opportunities(ctx, f)
}

func (s *gridService) Quotations(ctx context.Context, f grid.Filter) (grid.Page[model.QuotationGridRow], error) {
	return s.gridStore.Quotations(ctx, f)
}

func (s *gridService) Demos(ctx context.Context, f grid.Filter) (grid.Page[model.DemoGridRow], error) {
	return s.gridStore.Demos(ctx, f)
}

func (s *gridService) Orders(ctx context.Context, f grid.Filter) (grid.Page[model.OrderGridRow], error) {
	return s.gridStore.Orders(ctx, f)
}

func (s *gridService) FilterOptions(ctx context.Context, entity, column string) ([]string, error) {
	return s.options.Get(ctx, entity, column, func(ctx context.Context) ([]string, error) {
		return s.gridStore.FilterOptions(ctx, entity, column)
	})
}
