package dto

import (
	"time"

	"github.com/naveen06raj/erp-api/internal/model"
)

type CreateActivityRequest struct {
	Stage       string `json:"stage" binding:"required"`
	StageItemID string `json:"stageItemId" binding:"required"`
	Status      string `json:"status" binding:"required,min=1,max=100"`
	Title       string `json:"title" binding:"required,min=1"`
	UserCreated *int64 `json:"userCreated,omitempty"`
}

func (r CreateActivityRequest) ToModel(kind model.ActivityKind) *model.ActivityRecord {
	return &model.ActivityRecord{
		Kind:        kind,
		Stage:       model.Stage(r.Stage),
		StageItemID: r.StageItemID,
		Status:      r.Status,
		Title:       r.Title,
		UserCreated: r.UserCreated,
	}
}

type ActivityResponse struct {
	ID          int64     `json:"id,string"`
	Kind        string    `json:"kind"`
	Stage       string    `json:"stage"`
	StageItemID string    `json:"stageItemId"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	IsActive    bool      `json:"isActive"`
	DateCreated time.Time `json:"dateCreated"`
}

func ToActivityResponse(a *model.ActivityRecord) *ActivityResponse {
	return &ActivityResponse{
		ID:          a.ID,
		Kind:        string(a.Kind),
		Stage:       a.Stage.String(),
		StageItemID: a.StageItemID,
		Status:      a.Status,
		Title:       a.Title,
		IsActive:    a.IsActive,
		DateCreated: a.DateCreated,
	}
}

func ToActivityResponses(activities []model.ActivityRecord) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = *ToActivityResponse(&activities[i])
	}
	return out
}
