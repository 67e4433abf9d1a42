package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/dto"
	"github.com/naveen06raj/erp-api/internal/service"
)

// SummaryHandler exposes the timeline: emitting summary rows, reading them
// back, and the comprehensive per-item feed.
type SummaryHandler struct {
	summaryService  service.SummaryService
	timelineService service.TimelineService
}

func NewSummaryHandler(summaryService service.SummaryService, timelineService service.TimelineService) *SummaryHandler {
	return &SummaryHandler{
		summaryService:  summaryService,
		timelineService: timelineService,
	}
}

func (h *SummaryHandler) Emit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EmitSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary := req.ToModel()
	if _, err := h.summaryService.Emit(ctx, summary); err != nil {
		respondError(c, err, "failed to emit summary")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSummaryResponse(summary))
}

func (h *SummaryHandler) GetByID(c *gin.Context) {
	summaryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.summaryService.GetByID(c.Request.Context(), summaryID)
	if err != nil {
		respondError(c, err, "failed to load summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// List serves the filtered summary listing: optional stage and stageItemId
// query params, most recent rows when neither is given.
func (h *SummaryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	stage := c.Query("stage")
	stageItemID := c.Query("stageItemId")

	if stage == "" && stageItemID == "" {
		limit := int32(0)
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = int32(parsed)
		}
		summaries, err := h.summaryService.ListRecent(ctx, limit)
		if err != nil {
			respondError(c, err, "failed to list summaries")
			return
		}
		c.JSON(http.StatusOK, dto.ToSummaryResponses(summaries))
		return
	}

	summaries, err := h.summaryService.ListFiltered(ctx, optional(stage), optional(stageItemID))
	if err != nil {
		respondError(c, err, "failed to list summaries")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponses(summaries))
}

// Timeline returns the comprehensive feed for one pipeline item: explicit
// summaries merged with rows synthesized from the activity tables.
func (h *SummaryHandler) Timeline(c *gin.Context) {
	stageItemID := c.Param("stageItemId")

	rows, err := h.timelineService.GetTimeline(c.Request.Context(), stageItemID)
	if err != nil {
		respondError(c, err, "failed to build timeline")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponses(rows))
}

func (h *SummaryHandler) Deactivate(c *gin.Context) {
	summaryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.summaryService.Deactivate(c.Request.Context(), summaryID); err != nil {
		respondError(c, err, "failed to deactivate summary")
		return
	}

	c.Status(http.StatusNoContent)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
