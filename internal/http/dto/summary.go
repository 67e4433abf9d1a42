package dto

import (
	"encoding/json"
	"time"

	"github.com/naveen06raj/erp-api/internal/model"
)

type EmitSummaryRequest struct {
	IconURL     *string         `json:"iconUrl,omitempty" binding:"omitempty,max=2048"`
	Title       string          `json:"title" binding:"required,min=1,max=255"`
	Description *string         `json:"description,omitempty"`
	OccurredAt  *time.Time      `json:"dateTime,omitempty"`
	Stage       string          `json:"stage" binding:"required"`
	StageItemID string          `json:"stageItemId" binding:"required"`
	Entities    json.RawMessage `json:"entities,omitempty"`
	UserCreated *int64          `json:"userCreated,omitempty"`
}

func (r EmitSummaryRequest) ToModel() *model.Summary {
	s := &model.Summary{
		IconURL:     r.IconURL,
		Title:       r.Title,
		Description: r.Description,
		Stage:       model.Stage(r.Stage),
		StageItemID: r.StageItemID,
		Entities:    r.Entities,
		UserCreated: r.UserCreated,
	}
	if r.OccurredAt != nil {
		s.OccurredAt = *r.OccurredAt
	}
	return s
}

type SummaryResponse struct {
	ID          int64           `json:"id,string"`
	IconURL     *string         `json:"iconUrl,omitempty"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	OccurredAt  time.Time       `json:"dateTime"`
	IsActive    bool            `json:"isActive"`
	Stage       string          `json:"stage"`
	StageItemID string          `json:"stageItemId"`
	Entities    json.RawMessage `json:"entities,omitempty"`
	UserCreated *int64          `json:"userCreated,omitempty"`
	DateCreated time.Time       `json:"dateCreated"`
}

func ToSummaryResponse(s *model.Summary) *SummaryResponse {
	return &SummaryResponse{
		ID:          s.ID,
		IconURL:     s.IconURL,
		Title:       s.Title,
		Description: s.Description,
		OccurredAt:  s.OccurredAt,
		IsActive:    s.IsActive,
		Stage:       s.Stage.String(),
		StageItemID: s.StageItemID,
		Entities:    s.Entities,
		UserCreated: s.UserCreated,
		DateCreated: s.DateCreated,
	}
}

func ToSummaryResponses(summaries []model.Summary) []SummaryResponse {
	out := make([]SummaryResponse, len(summaries))
	for i := range summaries {
		out[i] = *ToSummaryResponse(&summaries[i])
	}
	return out
}
