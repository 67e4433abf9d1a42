package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

type ActivityService interface {
	Create(ctx context.Context, rec *model.ActivityRecord) (int64, error)
	ListByStageItem(ctx context.Context, kind model.ActivityKind, stageItemID string) ([]model.ActivityRecord, error)
	Deactivate(ctx context.Context, kind model.ActivityKind, id int64) error
}

type activityService struct {
	activityStore store.ActivityStore
	emitter       SummaryService
}

func NewActivityService(activityStore store.ActivityStore, emitter SummaryService) ActivityService {
	return &activityService{
		activityStore: activityStore,
		emitter:       emitter,
	}
}

func (s *activityService) Create(ctx context.Context, rec *model.ActivityRecord) (int64, error) {
	var violations []string
	if _, ok := model.ParseStage(string(rec.Stage)); !ok {
		violations = append(violations, fmt.Sprintf("invalid stage %q", rec.Stage))
	}
	if model.IsBlankOrPlaceholder(rec.StageItemID) {
		violations = append(violations, "stage item id is required")
	}
	if model.IsBlankOrPlaceholder(rec.Status) {
		violations = append(violations, "status is required")
	}
	if model.IsBlankOrPlaceholder(rec.Title) {
		violations = append(violations, "title is required")
	}
	if err := model.NewValidationError(violations); err != nil {
		return 0, err
	}

	stage, _ := model.ParseStage(string(rec.Stage))
	rec.Stage = stage
	rec.IsActive = true
	rec.DateCreated = time.Now().UTC()
	rec.ID = id.New()

	if err := s.activityStore.Create(ctx, rec); err != nil {
		slog.ErrorContext(ctx, "failed to create activity",
			"error", err,
			"kind", rec.Kind,
			"stage_item_id", rec.StageItemID,
		)
		return 0, fmt.Errorf("creating %s activity: %w", rec.Kind, err)
	}

	// The timeline reader would synthesize this row on demand anyway, so a
	// failed emission here only costs an explicit record, never the activity.
	entities, err := json.Marshal(map[string]any{
		"ActivityId":   rec.ID,
		"ActivityKind": rec.Kind,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to encode activity entities payload", "error", err)
		entities = nil
	}
	synthetic := rec.Synthesize()
	synthetic.Entities = entities
	emitBestEffort(ctx, s.emitter, &synthetic)

	return rec.ID, nil
}

func (s *activityService) ListByStageItem(ctx context.Context, kind model.ActivityKind, stageItemID string) ([]model.ActivityRecord, error) {
	if model.IsBlankOrPlaceholder(stageItemID) {
		return nil, model.NewValidationError([]string{"stage item id is required"})
	}
	return s.activityStore.ListActiveByStageItem(ctx, kind, stageItemID)
}

func (s *activityService) Deactivate(ctx context.Context, kind model.ActivityKind, activityID int64) error {
	return s.activityStore.Deactivate(ctx, kind, activityID)
}
