package store

import (
	"context"
	"errors"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// SummaryStore owns the append-only timeline rows. There is deliberately no
// update method; summaries are written once and only ever soft-deactivated.
type SummaryStore interface {
	GetByID(ctx context.Context, id int64) (*model.Summary, error)
	Create(ctx context.Context, summary *model.Summary) error
	ListActiveByStageItem(ctx context.Context, stageItemID string) ([]model.Summary, error)
	ListRecent(ctx context.Context, limit int32) ([]model.Summary, error)
	ListFiltered(ctx context.Context, stage *model.Stage, stageItemID *string) ([]model.Summary, error)
	Deactivate(ctx context.Context, id int64) error
}

// ActivityStore reads and writes the per-kind activity tables through the
// common ActivityRecord projection.
type ActivityStore interface {
	Create(ctx context.Context, rec *model.ActivityRecord) error
	ListActiveByStageItem(ctx context.Context, kind model.ActivityKind, stageItemID string) ([]model.ActivityRecord, error)
	Deactivate(ctx context.Context, kind model.ActivityKind, id int64) error
}

type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.ExternalComment, error)
	GetActiveByActivityID(ctx context.Context, activityID string) (*model.ExternalComment, error)
	Create(ctx context.Context, comment *model.ExternalComment) error
	Update(ctx context.Context, comment *model.ExternalComment) error
	// ListByStageItem returns one row per activity (latest wins) and skips
	// blank/placeholder descriptions.
	ListByStageItem(ctx context.Context, stage model.Stage, stageItemID string) ([]model.ExternalComment, error)
	Delete(ctx context.Context, id int64) error // soft delete
}

type LeadStore interface {
	GetByID(ctx context.Context, id int64) (*model.Lead, error)
	Create(ctx context.Context, lead *model.Lead) error
	Update(ctx context.Context, lead *model.Lead) error
	Delete(ctx context.Context, id int64) error // soft delete
	Grid(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error)
}

// GridStore serves the remaining entity grids through the shared engine.
type GridStore interface {
	Opportunities(ctx context.Context, f grid.Filter) (grid.Page[model.OpportunityGridRow], error)
	Quotations(ctx context.Context, f grid.Filter) (grid.Page[model.QuotationGridRow], error)
	Demos(ctx context.Context, f grid.Filter) (grid.Page[model.DemoGridRow], error)
	Orders(ctx context.Context, f grid.Filter) (grid.Page[model.OrderGridRow], error)
	// FilterOptions returns the distinct values of an allow-listed filterable
	// column, for the grid UI's multi-select filters.
	FilterOptions(ctx context.Context, entity, column string) ([]string, error)
}
