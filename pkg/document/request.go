package document

import (
	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/narrative"
	"github.com/dd0wney/cluso-compliance/pkg/validation"
)

// GenerateRequest is the inbound document-generation request. Validation
// runs before any pipeline work: an invalid request never reaches partial
// document construction.
type GenerateRequest struct {
	SystemName   string `json:"systemName" validate:"required,min=1,max=200"`
	Organization string `json:"organization" validate:"max=200"`
	Baseline     string `json:"baseline" validate:"required,oneof=low moderate high"`

	// UneditedPolicy selects the tier-3 fallback; empty means placeholder
	UneditedPolicy string `json:"uneditedPolicy" validate:"omitempty,oneof=exclude nist_text placeholder"`

	// ControlIDs optionally restricts output to a subset of the baseline's
	// controls; ids are normalized before use
	ControlIDs []string `json:"controlIds,omitempty"`

	// CustomNarratives are authoritative per-control overrides, keyed by
	// control id (normalized before lookup)
	CustomNarratives map[string]narrative.Custom `json:"customNarratives,omitempty"`

	// SortContributors orders multi-device note aggregation by device name
	// for reproducible builds
	SortContributors bool `json:"sortContributors,omitempty"`

	Nodes []diagram.Node `json:"nodes"`
	Edges []diagram.Edge `json:"edges"`
}

// ValidationError carries every collected field error for an invalid request
type ValidationError struct {
	Result *validation.Result
}

func (e *ValidationError) Error() string {
	return "invalid generation request: " + e.Result.Error()
}

// Fields returns the individual field errors
func (e *ValidationError) Fields() []validation.FieldError {
	return e.Result.Errors
}

// validate collects every problem with the request: struct tags, diagram
// invariants, and custom-narrative references
func (req *GenerateRequest) validate() *validation.Result {
	result := validation.Struct(req)
	result.Merge(validation.Diagram(req.Nodes, req.Edges))

	for id, custom := range req.CustomNarratives {
		if catalog.NormalizeControlID(id) == "" {
			result.Add("customNarratives", "empty control id key")
		}
		if custom.Text == "" {
			result.Add("customNarratives", "custom narrative for %s has no text", id)
		}
	}
	return result
}

// policy maps the request field to the narrative policy, defaulting to
// placeholder
func (req *GenerateRequest) policy() narrative.Policy {
	switch req.UneditedPolicy {
	case string(narrative.PolicyExclude):
		return narrative.PolicyExclude
	case string(narrative.PolicyNISTText):
		return narrative.PolicyNISTText
	default:
		return narrative.PolicyPlaceholder
	}
}
