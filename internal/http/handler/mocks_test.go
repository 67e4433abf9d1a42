package handler_test

import (
	"context"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

type mockSummaryService struct {
	emitFn            func(ctx context.Context, summary *model.Summary) (int64, error)
	getByIDFn         func(ctx context.Context, id int64) (*model.Summary, error)
	listByStageItemFn func(ctx context.Context, stageItemID string) ([]model.Summary, error)
	listRecentFn      func(ctx context.Context, limit int32) ([]model.Summary, error)
	listFilteredFn    func(ctx context.Context, stage, stageItemID *string) ([]model.Summary, error)
	deactivateFn      func(ctx context.Context, id int64) error
}

func (m *mockSummaryService) Emit(ctx context.Context, summary *model.Summary) (int64, error) {
	if m.emitFn != nil {
		return m.emitFn(ctx, summary)
	}
	summary.ID = 1
	return 1, nil
}

func (m *mockSummaryService) GetByID(ctx context.Context, id int64) (*model.Summary, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockSummaryService) ListByStageItem(ctx context.Context, stageItemID string) ([]model.Summary, error) {
	if m.listByStageItemFn != nil {
		return m.listByStageItemFn(ctx, stageItemID)
	}
	return []model.Summary{}, nil
}

func (m *mockSummaryService) ListRecent(ctx context.Context, limit int32) ([]model.Summary, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit)
	}
	return []model.Summary{}, nil
}

func (m *mockSummaryService) ListFiltered(ctx context.Context, stage, stageItemID *string) ([]model.Summary, error) {
	if m.listFilteredFn != nil {
		return m.listFilteredFn(ctx, stage, stageItemID)
	}
	return []model.Summary{}, nil
}

func (m *mockSummaryService) Deactivate(ctx context.Context, id int64) error {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, id)
	}
	return nil
}

type mockTimelineService struct {
	getTimelineFn func(ctx context.Context, stageItemID string) ([]model.Summary, error)
}

func (m *mockTimelineService) GetTimeline(ctx context.Context, stageItemID string) ([]model.Summary, error) {
	if m.getTimelineFn != nil {
		return m.getTimelineFn(ctx, stageItemID)
	}
	return []model.Summary{}, nil
}

type mockCommentService struct {
	createFn            func(ctx context.Context, comment *model.ExternalComment) (int64, error)
	createForActivityFn func(ctx context.Context, comment *model.ExternalComment) (int64, error)
	updateFn            func(ctx context.Context, comment *model.ExternalComment) error
	getByIDFn           func(ctx context.Context, id int64) (*model.ExternalComment, error)
	listByStageItemFn   func(ctx context.Context, stage, stageItemID string) ([]model.ExternalComment, error)
	deleteFn            func(ctx context.Context, id int64) error
}

func (m *mockCommentService) Create(ctx context.Context, comment *model.ExternalComment) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	comment.ID = 1
	return 1, nil
}

func (m *mockCommentService) CreateForActivity(ctx context.Context, comment *model.ExternalComment) (int64, error) {
	if m.createForActivityFn != nil {
		return m.createForActivityFn(ctx, comment)
	}
	comment.ID = 1
	return 1, nil
}

func (m *mockCommentService) Update(ctx context.Context, comment *model.ExternalComment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentService) GetByID(ctx context.Context, id int64) (*model.ExternalComment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCommentService) ListByStageItem(ctx context.Context, stage, stageItemID string) ([]model.ExternalComment, error) {
	if m.listByStageItemFn != nil {
		return m.listByStageItemFn(ctx, stage, stageItemID)
	}
	return []model.ExternalComment{}, nil
}

func (m *mockCommentService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockLeadService struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Lead, error)
	createFn  func(ctx context.Context, lead *model.Lead) (int64, error)
	updateFn  func(ctx context.Context, lead *model.Lead) error
	deleteFn  func(ctx context.Context, id int64) error
	gridFn    func(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error)
}

func (m *mockLeadService) GetByID(ctx context.Context, id int64) (*model.Lead, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockLeadService) Create(ctx context.Context, lead *model.Lead) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, lead)
	}
	lead.ID = 1
	return 1, nil
}

func (m *mockLeadService) Update(ctx context.Context, lead *model.Lead) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, lead)
	}
	return nil
}

func (m *mockLeadService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockLeadService) Grid(ctx context.Context, f grid.Filter) (grid.Page[model.LeadGridRow], error) {
	if m.gridFn != nil {
		return m.gridFn(ctx, f)
	}
	return grid.Page[model.LeadGridRow]{Results: []model.LeadGridRow{}}, nil
}
