package document

import (
	"time"

	"github.com/dd0wney/cluso-compliance/pkg/inventory"
	"github.com/dd0wney/cluso-compliance/pkg/narrative"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// Metadata is the document header block
type Metadata struct {
	DocumentID   string    `json:"documentId"`
	SystemName   string    `json:"systemName"`
	Organization string    `json:"organization,omitempty"`
	Baseline     string    `json:"baseline"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Version      string    `json:"version"`
}

// DeviceRef is a resolved reference to an implementing device or boundary
type DeviceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ResolvedControl is one control in the final document: narrative text from
// exactly one source, plus resolved implementing references
type ResolvedControl struct {
	ControlID            string           `json:"controlId"`
	Family               string           `json:"family"`
	FamilyName           string           `json:"familyName"`
	Title                string           `json:"title"`
	Narrative            string           `json:"narrative"`
	Source               narrative.Source `json:"source"`
	ImplementationStatus string           `json:"implementationStatus,omitempty"`
	Devices              []DeviceRef      `json:"devices,omitempty"`
	Boundaries           []DeviceRef      `json:"boundaries,omitempty"`
}

// SSPDocument is the assembled System Security Plan
type SSPDocument struct {
	Metadata  Metadata           `json:"metadata"`
	Summary   *topology.Summary  `json:"summary"`
	Inventory inventory.Snapshot `json:"inventory"`
	Controls  []ResolvedControl  `json:"controls"`
}
