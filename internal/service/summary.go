package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/common/logger"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

// SummaryService is the timeline emitter plus the summary read API. Emission
// is synchronous and deliberately decoupled from the entity mutation that
// triggered it: the caller's write has already committed by the time Emit
// runs, and an emission failure never rolls it back.
type SummaryService interface {
	Emit(ctx context.Context, summary *model.Summary) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Summary, error)
	ListByStageItem(ctx context.Context, stageItemID string) ([]model.Summary, error)
	ListRecent(ctx context.Context, limit int32) ([]model.Summary, error)
	ListFiltered(ctx context.Context, stage, stageItemID *string) ([]model.Summary, error)
	Deactivate(ctx context.Context, id int64) error
}

type summaryService struct {
	summaryStore store.SummaryStore
}

func NewSummaryService(summaryStore store.SummaryStore) SummaryService {
	return &summaryService{summaryStore: summaryStore}
}

func (s *summaryService) Emit(ctx context.Context, summary *model.Summary) (int64, error) {
	var violations []string

	stage, ok := model.ParseStage(string(summary.Stage))
	if !ok {
		violations = append(violations, fmt.Sprintf("invalid stage %q", summary.Stage))
	}
	if model.IsBlankOrPlaceholder(summary.Title) {
		violations = append(violations, "summary title is required")
	}
	if model.IsBlankOrPlaceholder(summary.StageItemID) {
		violations = append(violations, "stage item id is required")
	}
	if err := model.NewValidationError(violations); err != nil {
		return 0, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component:   "erp.service.summary",
		Stage:       logger.Ptr(stage.String()),
		StageItemID: logger.Ptr(summary.StageItemID),
	})

	summary.Stage = stage
	summary.Description = model.CleanOptional(summary.Description)
	summary.IconURL = model.CleanOptional(summary.IconURL)
	summary.IsActive = true
	if summary.OccurredAt.IsZero() {
		summary.OccurredAt = time.Now().UTC()
	}
	if summary.DateCreated.IsZero() {
		summary.DateCreated = summary.OccurredAt
	}
	summary.ID = id.New()

	if err := s.summaryStore.Create(ctx, summary); err != nil {
		return 0, fmt.Errorf("creating summary: %w", err)
	}

	slog.InfoContext(ctx, "summary emitted",
		"summary_id", summary.ID,
		"stage", summary.Stage.String(),
		"stage_item_id", summary.StageItemID,
		"title", summary.Title,
	)
	return summary.ID, nil
}

func (s *summaryService) GetByID(ctx context.Context, summaryID int64) (*model.Summary, error) {
	return s.summaryStore.GetByID(ctx, summaryID)
}

func (s *summaryService) ListByStageItem(ctx context.Context, stageItemID string) ([]model.Summary, error) {
	return s.summaryStore.ListActiveByStageItem(ctx, stageItemID)
}

func (s *summaryService) ListRecent(ctx context.Context, limit int32) ([]model.Summary, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.summaryStore.ListRecent(ctx, limit)
}

func (s *summaryService) ListFiltered(ctx context.Context, stage, stageItemID *string) ([]model.Summary, error) {
	var stageFilter *model.Stage
	if stage != nil && !model.IsBlankOrPlaceholder(*stage) {
		parsed, ok := model.ParseStage(*stage)
		if !ok {
			return nil, model.NewValidationError([]string{fmt.Sprintf("invalid stage %q", *stage)})
		}
		stageFilter = &parsed
	}
	itemFilter := model.CleanOptional(stageItemID)
	return s.summaryStore.ListFiltered(ctx, stageFilter, itemFilter)
}

func (s *summaryService) Deactivate(ctx context.Context, summaryID int64) error {
	return s.summaryStore.Deactivate(ctx, summaryID)
}

// emitBestEffort appends a summary for an already-committed mutation. The
// primary operation must not fail when the timeline write does, so errors are
// logged and swallowed here. A crash between the two leaves the timeline
// stale until the reader's reconciliation path backfills it.
func emitBestEffort(ctx context.Context, emitter SummaryService, summary *model.Summary) {
	if _, err := emitter.Emit(ctx, summary); err != nil {
		slog.WarnContext(ctx, "summary emission failed, continuing",
			"error", err,
			"stage", summary.Stage.String(),
			"stage_item_id", summary.StageItemID,
			"title", summary.Title,
		)
	}
}
