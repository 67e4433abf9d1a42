package dto

import (
	"time"

	"github.com/naveen06raj/erp-api/internal/model"
)

type CreateCommentRequest struct {
	Description string  `json:"description" binding:"required,min=1"`
	Stage       string  `json:"stage" binding:"required"`
	StageItemID string  `json:"stageItemId" binding:"required"`
	ActivityID  *string `json:"activityId,omitempty"`
	UserCreated *int64  `json:"userCreated,omitempty"`
}

func (r CreateCommentRequest) ToModel() *model.ExternalComment {
	return &model.ExternalComment{
		Description: r.Description,
		Stage:       model.Stage(r.Stage),
		StageItemID: r.StageItemID,
		ActivityID:  r.ActivityID,
		UserCreated: r.UserCreated,
	}
}

type UpdateCommentRequest struct {
	Description string `json:"description" binding:"required,min=1"`
	Stage       string `json:"stage" binding:"required"`
	StageItemID string `json:"stageItemId" binding:"required"`
	UserUpdated *int64 `json:"userUpdated,omitempty"`
}

type CommentResponse struct {
	ID          int64     `json:"id,string"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Stage       string    `json:"stage"`
	StageItemID string    `json:"stageItemId"`
	ActivityID  *string   `json:"activityId,omitempty"`
	IsActive    bool      `json:"isActive"`
	DateCreated time.Time `json:"dateCreated"`
}

func ToCommentResponse(c *model.ExternalComment) *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		DateTime:    c.DateTime,
		Stage:       c.Stage.String(),
		StageItemID: c.StageItemID,
		ActivityID:  c.ActivityID,
		IsActive:    c.IsActive,
		DateCreated: c.DateCreated,
	}
}

func ToCommentResponses(comments []model.ExternalComment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = *ToCommentResponse(&comments[i])
	}
	return out
}
