package narrative

import (
	"context"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// Policy selects what happens to a control no narrative source covered
type Policy string

const (
	// PolicyExclude drops unedited controls from the document entirely
	PolicyExclude Policy = "exclude"
	// PolicyNISTText substitutes the catalog's default control text
	PolicyNISTText Policy = "nist_text"
	// PolicyPlaceholder synthesizes text from topology facts (the default),
	// preferring an externally supplied per-family enhanced narrative
	PolicyPlaceholder Policy = "placeholder"
)

// Source labels where a control's narrative text came from, recorded per
// control so resolution order is observable in tests and output
type Source string

const (
	SourceCustom      Source = "custom"
	SourceDeviceNotes Source = "device_notes"
	SourceEnhanced    Source = "enhanced"
	SourceGenerated   Source = "generated"
	SourceCatalogText Source = "catalog_default"
)

// Custom is a caller-supplied narrative for one control. Authoritative:
// when Text is non-empty no other source is consulted.
type Custom struct {
	Text                 string   `json:"text"`
	ImplementationStatus string   `json:"implementationStatus,omitempty"`
	DeviceIDs            []string `json:"deviceIds,omitempty"`
	BoundaryIDs          []string `json:"boundaryIds,omitempty"`
}

// Provider supplies a pre-generated narrative per control family. Consulted
// only at the placeholder tier; errors and empty strings both degrade to
// the procedural generator.
type Provider interface {
	FamilyNarrative(ctx context.Context, family string) (string, error)
}

// Resolved is the outcome of the fallback chain for one control
type Resolved struct {
	ControlID            string   `json:"controlId"`
	Family               string   `json:"family"`
	Title                string   `json:"title"`
	Text                 string   `json:"text"`
	Source               Source   `json:"source"`
	ImplementationStatus string   `json:"implementationStatus,omitempty"`
	DeviceIDs            []string `json:"deviceIds,omitempty"`
	BoundaryIDs          []string `json:"boundaryIds,omitempty"`
}

// Resolver runs the per-control fallback chain
type Resolver struct {
	// Policy applies to controls with neither a custom narrative nor
	// device notes; zero value falls back to PolicyPlaceholder
	Policy Policy

	// Enhancer is optional; nil skips straight to the generator
	Enhancer Provider

	// SortContributors orders multi-device note aggregation by device name
	// instead of node-array order, for reproducible builds
	SortContributors bool
}

// Resolve picks exactly one narrative source for the control. The second
// return is false when the policy excluded the control from the output.
//
// The chain is strictly priority-ordered: a custom narrative prevents any
// device-note scan or generator call, and device notes prevent any policy
// branch.
func (r *Resolver) Resolve(ctx context.Context, entry catalog.Entry, custom *Custom, g *diagram.Graph, summary *topology.Summary) (Resolved, bool) {
	resolved := Resolved{
		ControlID: entry.ID,
		Family:    entry.Family,
		Title:     entry.Title,
	}

	// Tier 1: caller-supplied custom narrative
	if custom != nil && strings.TrimSpace(custom.Text) != "" {
		resolved.Text = custom.Text
		resolved.Source = SourceCustom
		resolved.ImplementationStatus = custom.ImplementationStatus
		resolved.DeviceIDs = custom.DeviceIDs
		resolved.BoundaryIDs = custom.BoundaryIDs
		return resolved, true
	}

	// Tier 2: aggregated per-device notes
	if text, deviceIDs := r.aggregateDeviceNotes(entry.ID, g); text != "" {
		resolved.Text = text
		resolved.Source = SourceDeviceNotes
		resolved.DeviceIDs = deviceIDs
		return resolved, true
	}

	// Tier 3: unedited-controls policy
	switch r.Policy {
	case PolicyExclude:
		return Resolved{}, false
	case PolicyNISTText:
		resolved.Text = entry.DefaultText
		resolved.Source = SourceCatalogText
		return resolved, true
	default: // PolicyPlaceholder
		if r.Enhancer != nil {
			if text, err := r.Enhancer.FamilyNarrative(ctx, entry.Family); err == nil && strings.TrimSpace(text) != "" {
				resolved.Text = text
				resolved.Source = SourceEnhanced
				return resolved, true
			}
		}
		resolved.Text = GenerateFamilyText(entry.Family, summary)
		resolved.Source = SourceGenerated
		return resolved, true
	}
}

// noteContributor pairs a device with its note for one control
type noteContributor struct {
	id   string
	name string
	note string
}

// aggregateDeviceNotes scans device nodes whose assigned-controls list
// includes the control and whose note for it is non-empty. One contributor
// yields its note verbatim; several yield "<name>: <note>" blocks, in
// node-array order unless SortContributors is set.
func (r *Resolver) aggregateDeviceNotes(controlID string, g *diagram.Graph) (string, []string) {
	if g == nil {
		return "", nil
	}

	contributors := make([]noteContributor, 0)
	for _, device := range g.Devices() {
		if !assignedTo(device, controlID) {
			continue
		}
		note := noteFor(device, controlID)
		if note == "" {
			continue
		}
		contributors = append(contributors, noteContributor{id: device.ID, name: device.Name, note: note})
	}

	if len(contributors) == 0 {
		return "", nil
	}

	if r.SortContributors {
		sort.Slice(contributors, func(i, j int) bool {
			return contributors[i].name < contributors[j].name
		})
	}

	ids := make([]string, 0, len(contributors))
	for _, c := range contributors {
		ids = append(ids, c.id)
	}

	if len(contributors) == 1 {
		return contributors[0].note, ids
	}

	blocks := make([]string, 0, len(contributors))
	for _, c := range contributors {
		blocks = append(blocks, c.name+": "+c.note)
	}
	return strings.Join(blocks, "\n\n"), ids
}

// noteFor finds the device's note for a control, tolerating un-normalized
// note keys ("ac-02" notes still attach to AC-2)
func noteFor(device *diagram.Node, controlID string) string {
	if note, ok := device.Compliance.ControlNotes[controlID]; ok {
		return strings.TrimSpace(note)
	}
	for key, note := range device.Compliance.ControlNotes {
		if catalog.NormalizeControlID(key) == controlID {
			return strings.TrimSpace(note)
		}
	}
	return ""
}

func assignedTo(device *diagram.Node, controlID string) bool {
	for _, assigned := range device.Compliance.AssignedControls {
		if catalog.NormalizeControlID(assigned) == controlID {
			return true
		}
	}
	return false
}
