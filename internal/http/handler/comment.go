package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/dto"
	"github.com/naveen06raj/erp-api/internal/model"
	"github.com/naveen06raj/erp-api/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := req.ToModel()

	var err error
	if comment.ActivityID != nil {
		_, err = h.commentService.CreateForActivity(ctx, comment)
	} else {
		_, err = h.commentService.Create(ctx, comment)
	}
	if err != nil {
		respondError(c, err, "failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err, "failed to load comment")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := &model.ExternalComment{
		ID:          commentID,
		Description: req.Description,
		Stage:       model.Stage(req.Stage),
		StageItemID: req.StageItemID,
		UserUpdated: req.UserUpdated,
	}
	if err := h.commentService.Update(ctx, comment); err != nil {
		respondError(c, err, "failed to update comment")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// ListByStageItem returns one comment per activity for the item, latest
// first, skipping blank descriptions.
func (h *CommentHandler) ListByStageItem(c *gin.Context) {
	stage := c.Param("stage")
	stageItemID := c.Param("stageItemId")

	comments, err := h.commentService.ListByStageItem(c.Request.Context(), stage, stageItemID)
	if err != nil {
		respondError(c, err, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		respondError(c, err, "failed to delete comment")
		return
	}

	c.Status(http.StatusNoContent)
}
