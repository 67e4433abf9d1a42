package model

import "time"

// ExternalComment is a customer-facing comment attached to a pipeline item,
// optionally linked to the activity that prompted it.
type ExternalComment struct {
	ID          int64
	Title       string
	Description string
	DateTime    time.Time
	Stage       Stage
	StageItemID string
	IsActive    bool
	// ActivityID links the comment to the activity it was created for, e.g.
	// "Call-7". At most one active comment may exist per activity.
	ActivityID  *string
	UserCreated *int64
	DateCreated time.Time
	UserUpdated *int64
	DateUpdated *time.Time
}
