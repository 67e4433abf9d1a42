package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naveen06raj/erp-api/common/id"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

var _ = Describe("SummaryService", func() {
	var (
		svc       service.SummaryService
		mockStore *mockSummaryStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockStore = &mockSummaryStore{}

		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		svc = service.NewSummaryService(mockStore)
	})

	Describe("Emit", func() {
		Context("when the summary is valid", func() {
			It("should persist an active row with a generated ID", func() {
				var captured *model.Summary
				mockStore.createFn = func(_ context.Context, s *model.Summary) error {
					captured = s
					return nil
				}

				occurred := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
				summaryID, err := svc.Emit(ctx, &model.Summary{
					Title:       "Lead created",
					Stage:       model.StageLead,
					StageItemID: "42",
					OccurredAt:  occurred,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(summaryID).NotTo(BeZero())
				Expect(captured).NotTo(BeNil())
				Expect(captured.ID).To(Equal(summaryID))
				Expect(captured.IsActive).To(BeTrue())
				Expect(captured.OccurredAt).To(Equal(occurred))
			})

			It("should normalize the stage to canonical casing", func() {
				var captured *model.Summary
				mockStore.createFn = func(_ context.Context, s *model.Summary) error {
					captured = s
					return nil
				}

				_, err := svc.Emit(ctx, &model.Summary{
					Title:       "Deal closed",
					Stage:       model.Stage("dEaL"),
					StageItemID: "7",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(captured.Stage).To(Equal(model.StageDeal))
			})

			It("should default occurredAt when not set", func() {
				var captured *model.Summary
				mockStore.createFn = func(_ context.Context, s *model.Summary) error {
					captured = s
					return nil
				}

				_, err := svc.Emit(ctx, &model.Summary{
					Title:       "Quotation sent",
					Stage:       model.StageQuotation,
					StageItemID: "9",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(captured.OccurredAt).To(BeTemporally("~", time.Now().UTC(), time.Second))
			})

			It("should strip placeholder description and icon", func() {
				var captured *model.Summary
				mockStore.createFn = func(_ context.Context, s *model.Summary) error {
					captured = s
					return nil
				}

				placeholder := "string"
				_, err := svc.Emit(ctx, &model.Summary{
					Title:       "Demo scheduled",
					Stage:       model.StageDemo,
					StageItemID: "3",
					Description: &placeholder,
					IconURL:     &placeholder,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(captured.Description).To(BeNil())
				Expect(captured.IconURL).To(BeNil())
			})
		})

		Context("when the summary is invalid", func() {
			It("should collect every violation in one error", func() {
				_, err := svc.Emit(ctx, &model.Summary{
					Title:       "",
					Stage:       model.Stage("warehouse"),
					StageItemID: "string",
				})

				var verr *model.ValidationError
				Expect(errors.As(err, &verr)).To(BeTrue())
				Expect(verr.Violations).To(HaveLen(3))
				Expect(mockStore.createCalls).To(BeZero())
			})
		})

		Context("when the store fails", func() {
			It("should propagate the error", func() {
				mockStore.createFn = func(_ context.Context, _ *model.Summary) error {
					return errors.New("connection refused")
				}

				_, err := svc.Emit(ctx, &model.Summary{
					Title:       "Lead created",
					Stage:       model.StageLead,
					StageItemID: "42",
				})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("connection refused"))
			})
		})
	})

	Describe("ListFiltered", func() {
		It("should pass a parsed stage filter through", func() {
			var gotStage *model.Stage
			mockStore.listFilteredFn = func(_ context.Context, stage *model.Stage, _ *string) ([]model.Summary, error) {
				gotStage = stage
				return []model.Summary{}, nil
			}

			stage := "opportunity"
			_, err := svc.ListFiltered(ctx, &stage, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotStage).NotTo(BeNil())
			Expect(*gotStage).To(Equal(model.StageOpportunity))
		})

		It("should reject an unknown stage filter", func() {
			stage := "basement"
			_, err := svc.ListFiltered(ctx, &stage, nil)

			var verr *model.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})

		It("should treat placeholder filters as absent", func() {
			var gotStage *model.Stage
			var gotItem *string
			mockStore.listFilteredFn = func(_ context.Context, stage *model.Stage, item *string) ([]model.Summary, error) {
				gotStage = stage
				gotItem = item
				return []model.Summary{}, nil
			}

			stage := "string"
			item := "  "
			_, err := svc.ListFiltered(ctx, &stage, &item)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotStage).To(BeNil())
			Expect(gotItem).To(BeNil())
		})
	})
})
