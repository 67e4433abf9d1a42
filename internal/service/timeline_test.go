package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

var _ = Describe("TimelineService", func() {
	var (
		svc           service.TimelineService
		summaryStore  *mockSummaryStore
		activityStore *mockActivityStore
		ctx           context.Context
		base          time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		summaryStore = &mockSummaryStore{}
		activityStore = &mockActivityStore{}
		svc = service.NewTimelineService(summaryStore, activityStore)
		base = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	})

	Describe("GetTimeline", func() {
		It("should order rows newest first with ID as tiebreak", func() {
			summaryStore.listActiveByStageItemFn = func(_ context.Context, _ string) ([]model.Summary, error) {
				return []model.Summary{
					{ID: 1, Title: "older", OccurredAt: base.Add(-time.Hour), Stage: model.StageLead, StageItemID: "42"},
					{ID: 2, Title: "tied low", OccurredAt: base, Stage: model.StageLead, StageItemID: "42"},
					{ID: 5, Title: "tied high", OccurredAt: base, Stage: model.StageLead, StageItemID: "42"},
					{ID: 3, Title: "newest", OccurredAt: base.Add(time.Hour), Stage: model.StageLead, StageItemID: "42"},
				}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).NotTo(HaveOccurred())
			titles := make([]string, len(rows))
			for i, r := range rows {
				titles[i] = r.Title
			}
			Expect(titles).To(Equal([]string{"newest", "tied high", "tied low", "older"}))
		})

		It("should backfill activities that never got a summary", func() {
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, _ string) ([]model.ActivityRecord, error) {
				if kind != model.ActivityCall {
					return []model.ActivityRecord{}, nil
				}
				return []model.ActivityRecord{{
					ID:          10,
					Kind:        model.ActivityCall,
					Stage:       model.StageLead,
					StageItemID: "42",
					Status:      "Completed",
					Title:       "intro call",
					IsActive:    true,
					DateCreated: base,
				}}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Title).To(Equal("Completed status"))
			Expect(rows[0].Description).To(HaveValue(Equal("intro call")))
			Expect(rows[0].IconURL).To(HaveValue(Equal("/icons/general.png")))
		})

		It("should collapse a synthetic row that duplicates an explicit one", func() {
			desc := "intro call"
			summaryStore.listActiveByStageItemFn = func(_ context.Context, _ string) ([]model.Summary, error) {
				return []model.Summary{{
					ID:          99,
					Title:       "Completed status",
					Description: &desc,
					OccurredAt:  base,
					Stage:       model.StageLead,
					StageItemID: "42",
				}}, nil
			}
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, _ string) ([]model.ActivityRecord, error) {
				if kind != model.ActivityCall {
					return []model.ActivityRecord{}, nil
				}
				return []model.ActivityRecord{{
					ID:          10,
					Kind:        model.ActivityCall,
					Stage:       model.StageLead,
					StageItemID: "42",
					Status:      "Completed",
					Title:       "intro call",
					IsActive:    true,
					DateCreated: base,
				}}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].ID).To(Equal(int64(99)))
		})

		It("should keep rows about the same activity with different wording", func() {
			customDesc := "spoke with procurement"
			summaryStore.listActiveByStageItemFn = func(_ context.Context, _ string) ([]model.Summary, error) {
				return []model.Summary{{
					ID:          99,
					Title:       "Completed status",
					Description: &customDesc,
					OccurredAt:  base,
					Stage:       model.StageLead,
					StageItemID: "42",
				}}, nil
			}
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, _ string) ([]model.ActivityRecord, error) {
				if kind != model.ActivityCall {
					return []model.ActivityRecord{}, nil
				}
				return []model.ActivityRecord{{
					ID:          10,
					Kind:        model.ActivityCall,
					Stage:       model.StageLead,
					StageItemID: "42",
					Status:      "Completed",
					Title:       "intro call",
					IsActive:    true,
					DateCreated: base,
				}}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		It("should title comment activities as Comment status", func() {
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, _ string) ([]model.ActivityRecord, error) {
				if kind != model.ActivityComment {
					return []model.ActivityRecord{}, nil
				}
				return []model.ActivityRecord{{
					ID:          11,
					Kind:        model.ActivityComment,
					Stage:       model.StageOpportunity,
					StageItemID: "42",
					Status:      "whatever the column held",
					Title:       "pricing concern raised",
					IsActive:    true,
					DateCreated: base,
				}}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Title).To(Equal("Comment status"))
		})

		It("should fail the whole read when an activity source fails", func() {
			summaryStore.listActiveByStageItemFn = func(_ context.Context, _ string) ([]model.Summary, error) {
				return []model.Summary{{ID: 1, Title: "Lead created", OccurredAt: base, Stage: model.StageLead, StageItemID: "42"}}, nil
			}
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, _ string) ([]model.ActivityRecord, error) {
				if kind == model.ActivityTask {
					return nil, errors.New("relation missing")
				}
				return []model.ActivityRecord{}, nil
			}

			rows, err := svc.GetTimeline(ctx, "42")

			Expect(err).To(HaveOccurred())
			Expect(rows).To(BeNil())
		})

		It("should reject a blank stage item id", func() {
			_, err := svc.GetTimeline(ctx, "  ")

			var verr *model.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})
})
