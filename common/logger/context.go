package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so the pipeline context
// (stage, stage_item_id, etc.) shows up on every log line without each call
// site repeating it.
type LogFields struct {
	Stage       *string // Pipeline stage (Lead, Opportunity, ...)
	StageItemID *string // Item within the stage
	SummaryID   *int64  // Timeline summary record ID
	LeadID      *int64  // Lead primary key
	ActivityID  *string // Activity reference (e.g. "Call-7")
	Component   string  // Component name (e.g. "erp.service.timeline")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.Stage != nil {
		result.Stage = next.Stage
	}
	if next.StageItemID != nil {
		result.StageItemID = next.StageItemID
	}
	if next.SummaryID != nil {
		result.SummaryID = next.SummaryID
	}
	if next.LeadID != nil {
		result.LeadID = next.LeadID
	}
	if next.ActivityID != nil {
		result.ActivityID = next.ActivityID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}
