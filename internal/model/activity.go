package model

import "time"

// ActivityKind is the closed set of activity tables that feed the timeline.
type ActivityKind string

const (
	ActivityCall    ActivityKind = "call"
	ActivityMeeting ActivityKind = "meeting"
	ActivityTask    ActivityKind = "task"
	ActivityEvent   ActivityKind = "event"
	ActivityComment ActivityKind = "externalComment"
)

// ActivityKinds lists every kind in a fixed order. The timeline reader
// iterates this to build its synthetic rows.
var ActivityKinds = []ActivityKind{
	ActivityCall,
	ActivityMeeting,
	ActivityTask,
	ActivityEvent,
	ActivityComment,
}

// ActivityRecord is the common projection the timeline consumes from each
// activity table. Title holds the kind-specific title field (call agenda,
// meeting title, task name, event title, comment description); nothing else
// from those tables is assumed to exist.
type ActivityRecord struct {
	ID          int64
	Kind        ActivityKind
	Stage       Stage
	StageItemID string
	Status      string
	Title       string
	IsActive    bool
	UserCreated *int64
	DateCreated time.Time
	UserUpdated *int64
	DateUpdated *time.Time
}

const syntheticIconURL = "/icons/general.png"

// Synthesize projects an activity row into a summary-shaped timeline entry.
// Used for activities whose summary was never emitted (or emitted late): the
// feed surfaces them as "<status> status" rows derived from live data.
func (a ActivityRecord) Synthesize() Summary {
	status := a.Status
	if a.Kind == ActivityComment {
		status = "Comment"
	}
	icon := syntheticIconURL
	desc := a.Title
	return Summary{
		IconURL:     &icon,
		Title:       status + " status",
		Description: &desc,
		OccurredAt:  a.DateCreated,
		IsActive:    a.IsActive,
		Stage:       a.Stage,
		StageItemID: a.StageItemID,
		UserCreated: a.UserCreated,
		DateCreated: a.DateCreated,
	}
}
