package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naveen06raj/erp-api/internal/http/handler"
	"github.com/naveen06raj/erp-api/internal/model"
)

var _ = Describe("SummaryHandler", func() {
	var (
		router   *gin.Engine
		summary  *mockSummaryService
		timeline *mockTimelineService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		summary = &mockSummaryService{}
		timeline = &mockTimelineService{}
		h := handler.NewSummaryHandler(summary, timeline)

		router.POST("/summaries", h.Emit)
		router.GET("/summaries", h.List)
		router.GET("/summaries/:id", h.GetByID)
		router.DELETE("/summaries/:id", h.Deactivate)
		router.GET("/summaries/timeline/:stageItemId", h.Timeline)
	})

	It("emits a summary", func() {
		summary.emitFn = func(_ context.Context, s *model.Summary) (int64, error) {
			s.ID = 7
			s.IsActive = true
			return 7, nil
		}

		body, _ := json.Marshal(map[string]any{
			"title":       "Lead created",
			"stage":       "Lead",
			"stageItemId": "42",
		})
		req := httptest.NewRequest(http.MethodPost, "/summaries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("7"))
		Expect(resp["isActive"]).To(Equal(true))
	})

	It("returns 400 with all violations for an invalid summary", func() {
		summary.emitFn = func(_ context.Context, _ *model.Summary) (int64, error) {
			return 0, model.NewValidationError([]string{
				`invalid stage "warehouse"`,
				"stage item id is required",
			})
		}

		body, _ := json.Marshal(map[string]any{
			"title":       "x",
			"stage":       "warehouse",
			"stageItemId": "string",
		})
		req := httptest.NewRequest(http.MethodPost, "/summaries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["violations"]).To(HaveLen(2))
	})

	It("returns the timeline for a stage item", func() {
		occurred := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		timeline.getTimelineFn = func(_ context.Context, stageItemID string) ([]model.Summary, error) {
			Expect(stageItemID).To(Equal("42"))
			return []model.Summary{
				{ID: 2, Title: "Completed status", OccurredAt: occurred, Stage: model.StageLead, StageItemID: "42"},
				{ID: 1, Title: "Lead created", OccurredAt: occurred.Add(-time.Hour), Stage: model.StageLead, StageItemID: "42"},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/summaries/timeline/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["title"]).To(Equal("Completed status"))
	})

	It("lists recent summaries when no filters are given", func() {
		var gotLimit int32
		summary.listRecentFn = func(_ context.Context, limit int32) ([]model.Summary, error) {
			gotLimit = limit
			return []model.Summary{}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/summaries?limit=25", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotLimit).To(Equal(int32(25)))
	})

	It("filters summaries by stage", func() {
		summary.listFilteredFn = func(_ context.Context, stage, _ *string) ([]model.Summary, error) {
			Expect(stage).To(HaveValue(Equal("Lead")))
			return []model.Summary{{ID: 1, Title: "Lead created", Stage: model.StageLead, StageItemID: "42"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/summaries?stage=Lead", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
	})

	It("returns 404 for an unknown summary", func() {
		req := httptest.NewRequest(http.MethodGet, "/summaries/999", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects a non-numeric id", func() {
		req := httptest.NewRequest(http.MethodGet, "/summaries/abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("deactivates a summary", func() {
		var gotID int64
		summary.deactivateFn = func(_ context.Context, id int64) error {
			gotID = id
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/summaries/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(gotID).To(Equal(int64(7)))
	})
})
