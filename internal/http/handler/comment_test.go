package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naveen06raj/erp-api/internal/http/handler"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

var _ = Describe("CommentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCommentService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockCommentService{}
		h := handler.NewCommentHandler(svc)

		router.POST("/comments", h.Create)
		router.PUT("/comments/:id", h.Update)
		router.GET("/comments/stage/:stage/:stageItemId", h.ListByStageItem)
		router.DELETE("/comments/:id", h.Delete)
	})

	It("creates a standalone comment", func() {
		svc.createFn = func(_ context.Context, c *model.ExternalComment) (int64, error) {
			c.ID = 3
			c.Title = "comment added"
			c.IsActive = true
			return 3, nil
		}

		body, _ := json.Marshal(map[string]any{
			"description": "needs a follow up",
			"stage":       "Lead",
			"stageItemId": "42",
		})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["title"]).To(Equal("comment added"))
	})

	It("routes activity-linked comments through the duplicate check", func() {
		var calledForActivity bool
		svc.createForActivityFn = func(_ context.Context, c *model.ExternalComment) (int64, error) {
			calledForActivity = true
			c.ID = 4
			return 4, nil
		}

		body, _ := json.Marshal(map[string]any{
			"description": "call note",
			"stage":       "Lead",
			"stageItemId": "42",
			"activityId":  "Call-7",
		})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(calledForActivity).To(BeTrue())
	})

	It("returns 409 for a duplicate activity comment", func() {
		svc.createForActivityFn = func(_ context.Context, _ *model.ExternalComment) (int64, error) {
			return 0, service.ErrDuplicateActivityComment
		}

		body, _ := json.Marshal(map[string]any{
			"description": "second note",
			"stage":       "Lead",
			"stageItemId": "42",
			"activityId":  "Call-7",
		})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("returns 400 when the description is missing", func() {
		body, _ := json.Marshal(map[string]any{
			"stage":       "Lead",
			"stageItemId": "42",
		})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("updates a comment", func() {
		svc.updateFn = func(_ context.Context, c *model.ExternalComment) error {
			c.Title = "comment updated"
			return nil
		}

		body, _ := json.Marshal(map[string]any{
			"description": "revised",
			"stage":       "Lead",
			"stageItemId": "42",
		})
		req := httptest.NewRequest(http.MethodPut, "/comments/3", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["title"]).To(Equal("comment updated"))
	})

	It("lists comments for a stage item", func() {
		svc.listByStageItemFn = func(_ context.Context, stage, stageItemID string) ([]model.ExternalComment, error) {
			Expect(stage).To(Equal("lead"))
			Expect(stageItemID).To(Equal("42"))
			return []model.ExternalComment{{ID: 1, Title: "comment added", Description: "note", Stage: model.StageLead, StageItemID: "42"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/comments/stage/lead/42", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
	})
})
