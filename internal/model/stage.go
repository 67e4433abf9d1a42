package model

import "strings"

// Stage identifies the pipeline phase a sales item belongs to.
type Stage string

const (
	StageLead        Stage = "Lead"
	StageOpportunity Stage = "Opportunity"
	StageQuotation   Stage = "Quotation"
	StageDemo        Stage = "Demo"
	StageDeal        Stage = "Deal"
	StageCustomer    Stage = "Customer"
)

var validStages = map[string]Stage{
	"lead":        StageLead,
	"opportunity": StageOpportunity,
	"quotation":   StageQuotation,
	"demo":        StageDemo,
	"deal":        StageDeal,
	"customer":    StageCustomer,
}

// ParseStage resolves a stage name case-insensitively to its canonical form.
// The second return value is false for anything outside the closed set.
func ParseStage(s string) (Stage, bool) {
	stage, ok := validStages[strings.ToLower(strings.TrimSpace(s))]
	return stage, ok
}

func (s Stage) Valid() bool {
	_, ok := ParseStage(string(s))
	return ok
}

func (s Stage) String() string {
	return string(s)
}

// StageRef points at one item within a stage, e.g. lead 42.
type StageRef struct {
	Stage       Stage
	StageItemID string
}
