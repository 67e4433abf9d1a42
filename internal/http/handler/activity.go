package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/dto"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

// activityKindParams maps URL segments to activity kinds. Comments are not
// here: they have their own endpoints and store.
var activityKindParams = map[string]model.ActivityKind{
	"calls":    model.ActivityCall,
	"meetings": model.ActivityMeeting,
	"tasks":    model.ActivityTask,
	"events":   model.ActivityEvent,
}

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	kind, ok := kindFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := req.ToModel(kind)
	if _, err := h.activityService.Create(ctx, rec); err != nil {
		respondError(c, err, "failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(rec))
}

func (h *ActivityHandler) ListByStageItem(c *gin.Context) {
	kind, ok := kindFromPath(c)
	if !ok {
		return
	}

	activities, err := h.activityService.ListByStageItem(c.Request.Context(), kind, c.Param("stageItemId"))
	if err != nil {
		respondError(c, err, "failed to list activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponses(activities))
}

func (h *ActivityHandler) Deactivate(c *gin.Context) {
	kind, ok := kindFromPath(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.activityService.Deactivate(c.Request.Context(), kind, activityID); err != nil {
		respondError(c, err, "failed to deactivate activity")
		return
	}

	c.Status(http.StatusNoContent)
}

func kindFromPath(c *gin.Context) (model.ActivityKind, bool) {
	kind, ok := activityKindParams[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity kind"})
		return "", false
	}
	return kind, true
}
