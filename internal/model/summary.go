package model

import (
	"encoding/json"
	"time"
)

// Summary is one row of the activity timeline: a short human-readable record
// of something that happened to a pipeline item. Summaries are append-only;
// an entity's hard delete never removes the summaries it produced.
type Summary struct {
	ID          int64
	IconURL     *string
	Title       string
	Description *string
	OccurredAt  time.Time
	IsActive    bool
	Stage       Stage
	StageItemID string
	// Entities carries the ids needed to deep-link from the feed, e.g.
	// {"LeadId": 42, "CustomerName": "Apollo"}. Readers must treat it as an
	// opaque JSON object.
	Entities    json.RawMessage
	UserCreated *int64
	DateCreated time.Time
	UserUpdated *int64
	DateUpdated *time.Time
}
