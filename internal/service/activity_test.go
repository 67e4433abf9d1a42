package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

var _ = Describe("ActivityService", func() {
	var (
		svc           service.ActivityService
		activityStore *mockActivityStore
		summaryStore  *mockSummaryStore
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		activityStore = &mockActivityStore{}
		summaryStore = &mockSummaryStore{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		svc = service.NewActivityService(activityStore, service.NewSummaryService(summaryStore))
	})

	Describe("Create", func() {
		It("should persist the activity and emit a status summary", func() {
			var emitted *model.Summary
			summaryStore.createFn = func(_ context.Context, s *model.Summary) error {
				emitted = s
				return nil
			}

			activityID, err := svc.Create(ctx, &model.ActivityRecord{
				Kind:        model.ActivityMeeting,
				Stage:       model.StageOpportunity,
				StageItemID: "42",
				Status:      "Scheduled",
				Title:       "site walkthrough",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(activityID).NotTo(BeZero())
			Expect(emitted).NotTo(BeNil())
			Expect(emitted.Title).To(Equal("Scheduled status"))
			Expect(emitted.Description).To(HaveValue(Equal("site walkthrough")))
		})

		It("should succeed when the emission fails", func() {
			summaryStore.createFn = func(_ context.Context, _ *model.Summary) error {
				return errors.New("summaries table unavailable")
			}

			activityID, err := svc.Create(ctx, &model.ActivityRecord{
				Kind:        model.ActivityCall,
				Stage:       model.StageLead,
				StageItemID: "42",
				Status:      "Completed",
				Title:       "intro call",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(activityID).NotTo(BeZero())
		})

		It("should collect all violations for an empty request", func() {
			_, err := svc.Create(ctx, &model.ActivityRecord{Kind: model.ActivityTask})

			var verr *model.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.Violations).To(HaveLen(4))
		})
	})

	Describe("ListByStageItem", func() {
		It("should return the active records for the stage item", func() {
			var gotKind model.ActivityKind
			var gotStageItemID string
			activityStore.listActiveByStageItemFn = func(_ context.Context, kind model.ActivityKind, stageItemID string) ([]model.ActivityRecord, error) {
				gotKind = kind
				gotStageItemID = stageItemID
				return []model.ActivityRecord{
					{ID: 7, Kind: kind, StageItemID: stageItemID, Title: "demo prep"},
				}, nil
			}

			records, err := svc.ListByStageItem(ctx, model.ActivityTask, "42")

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Title).To(Equal("demo prep"))
			Expect(gotKind).To(Equal(model.ActivityTask))
			Expect(gotStageItemID).To(Equal("42"))
		})

		It("should reject a blank stage item id", func() {
			_, err := svc.ListByStageItem(ctx, model.ActivityCall, "  ")

			var verr *model.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})
})
