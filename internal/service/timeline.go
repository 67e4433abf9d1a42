package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/naveen06raj/erp-api/common/logger"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/store"
)

// TimelineService builds the comprehensive activity feed for one pipeline
// item: explicit summary rows merged with synthetic rows derived live from
// each activity table. The synthetic side is the reconciliation path — if an
// emission was lost, the activity still surfaces.
type TimelineService interface {
	GetTimeline(ctx context.Context, stageItemID string) ([]model.Summary, error)
}

type timelineService struct {
	summaryStore  store.SummaryStore
	activityStore store.ActivityStore
}

func NewTimelineService(summaryStore store.SummaryStore, activityStore store.ActivityStore) TimelineService {
	return &timelineService{
		summaryStore:  summaryStore,
		activityStore: activityStore,
	}
}

func (s *timelineService) GetTimeline(ctx context.Context, stageItemID string) ([]model.Summary, error) {
	if model.IsBlankOrPlaceholder(stageItemID) {
		return nil, model.NewValidationError([]string{"stage item id is required"})
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component:   "erp.service.timeline",
		StageItemID: logger.Ptr(stageItemID),
	})

	// All-or-nothing: a failure on any source aborts the read rather than
	// returning a feed with silent gaps.
	merged, err := s.summaryStore.ListActiveByStageItem(ctx, stageItemID)
	if err != nil {
		return nil, fmt.Errorf("listing summaries for %s: %w", stageItemID, err)
	}

	for _, kind := range model.ActivityKinds {
		activities, err := s.activityStore.ListActiveByStageItem(ctx, kind, stageItemID)
		if err != nil {
			return nil, fmt.Errorf("listing %s activities for %s: %w", kind, stageItemID, err)
		}
		for _, a := range activities {
			merged = append(merged, a.Synthesize())
		}
	}

	merged = collapseDuplicates(merged)

	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].OccurredAt.Equal(merged[j].OccurredAt) {
			return merged[i].OccurredAt.After(merged[j].OccurredAt)
		}
		return merged[i].ID > merged[j].ID
	})

	return merged, nil
}

// timelineKey identifies a feed row for deduplication. Explicit and synthetic
// rows only collapse when they are exact duplicates of what the reader shows;
// rows describing the same activity with different wording both survive.
type timelineKey struct {
	title       string
	description string
	occurredAt  int64
	stage       model.Stage
	stageItemID string
}

func collapseDuplicates(rows []model.Summary) []model.Summary {
	seen := make(map[timelineKey]struct{}, len(rows))
	out := rows[:0]
	for _, row := range rows {
		key := timelineKey{
			title:       row.Title,
			occurredAt:  row.OccurredAt.Truncate(time.Second).Unix(),
			stage:       row.Stage,
			stageItemID: row.StageItemID,
		}
		if row.Description != nil {
			key.description = *row.Description
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}
