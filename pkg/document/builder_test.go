package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/logging"
	"github.com/dd0wney/cluso-compliance/pkg/narrative"
)

func testNodes() []diagram.Node {
	return []diagram.Node{
		{ID: "fw-1", Kind: diagram.KindDevice, Name: "Edge Firewall", Type: "firewall"},
		{ID: "srv-1", Kind: diagram.KindDevice, Name: "App Server", Type: "server"},
		{ID: "dmz", Kind: diagram.KindBoundary, Name: "DMZ", ZoneType: "dmz"},
	}
}

func testBuilder() *Builder {
	b := NewBuilder()
	b.Logger = logging.NewNopLogger()
	b.Metrics = nil
	return b
}

func TestBuild_ValidRequest(t *testing.T) {
	b := testBuilder()
	b.Now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName: "Payments Platform",
		Baseline:   "moderate",
		Nodes:      testNodes(),
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if doc.Metadata.DocumentID == "" {
		t.Error("expected a generated document id")
	}
	if doc.Metadata.SystemName != "Payments Platform" {
		t.Errorf("system name = %q", doc.Metadata.SystemName)
	}
	if !doc.Metadata.GeneratedAt.Equal(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("GeneratedAt = %v, want injected clock", doc.Metadata.GeneratedAt)
	}
	if doc.Summary == nil || doc.Summary.DeviceCount != 2 {
		t.Errorf("summary device count wrong: %+v", doc.Summary)
	}
	if len(doc.Controls) == 0 {
		t.Fatal("expected resolved controls for the moderate baseline")
	}
	for _, c := range doc.Controls {
		if c.Narrative == "" {
			t.Errorf("%s: empty narrative under placeholder policy", c.ControlID)
		}
		if c.FamilyName == "" {
			t.Errorf("%s: missing family name", c.ControlID)
		}
	}
}

func TestBuild_InvalidRequestCollectsAllErrors(t *testing.T) {
	b := testBuilder()

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName: "",
		Baseline:   "extreme",
		Nodes: []diagram.Node{
			{ID: "a", Kind: diagram.KindDevice, Name: "A"},
			{ID: "a", Kind: diagram.KindDevice, Name: "Dup"},
		},
	})
	if doc != nil {
		t.Fatal("invalid request must not produce a partial document")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	// missing system name, bad baseline, duplicate node id
	if len(verr.Fields()) < 3 {
		t.Errorf("expected at least 3 field errors, got %d: %v", len(verr.Fields()), verr)
	}
}

func TestBuild_CustomNarrativeWins(t *testing.T) {
	b := testBuilder()

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName: "Sys",
		Baseline:   "low",
		Nodes:      testNodes(),
		CustomNarratives: map[string]narrative.Custom{
			"ac-02": {Text: "Accounts are provisioned through the IdP.", DeviceIDs: []string{"srv-1", "ghost"}},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	found := false
	for _, c := range doc.Controls {
		if c.ControlID != "AC-2" {
			continue
		}
		found = true
		if c.Source != narrative.SourceCustom {
			t.Errorf("AC-2 source = %q, want custom", c.Source)
		}
		if c.Narrative != "Accounts are provisioned through the IdP." {
			t.Errorf("AC-2 narrative = %q", c.Narrative)
		}
		// "ghost" references no node and is dropped
		if len(c.Devices) != 1 || c.Devices[0].ID != "srv-1" {
			t.Errorf("AC-2 devices = %+v, want only srv-1", c.Devices)
		}
	}
	if !found {
		t.Fatal("AC-2 not in document")
	}
}

func TestBuild_ControlSubsetPreservesCatalogOrder(t *testing.T) {
	b := testBuilder()

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName: "Sys",
		Baseline:   "high",
		Nodes:      testNodes(),
		ControlIDs: []string{"sc-07", "AC-2"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(doc.Controls) != 2 {
		t.Fatalf("controls = %d, want 2", len(doc.Controls))
	}
	// catalog order, not request order
	if doc.Controls[0].ControlID != "AC-2" || doc.Controls[1].ControlID != "SC-7" {
		t.Errorf("order = [%s %s], want [AC-2 SC-7]",
			doc.Controls[0].ControlID, doc.Controls[1].ControlID)
	}
}

func TestBuild_ExcludePolicyDropsUneditedControls(t *testing.T) {
	b := testBuilder()

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName:     "Sys",
		Baseline:       "low",
		UneditedPolicy: "exclude",
		Nodes:          testNodes(),
		CustomNarratives: map[string]narrative.Custom{
			"AC-2": {Text: "documented"},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(doc.Controls) != 1 || doc.Controls[0].ControlID != "AC-2" {
		t.Errorf("exclude policy kept %d controls: %+v", len(doc.Controls), doc.Controls)
	}
}

func TestBuild_DeviceNotesAttach(t *testing.T) {
	nodes := testNodes()
	nodes[0].Compliance.AssignedControls = []string{"SC-7"}
	nodes[0].Compliance.ControlNotes = map[string]string{"SC-7": "Default-deny ruleset reviewed quarterly."}

	b := testBuilder()
	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName: "Sys",
		Baseline:   "moderate",
		Nodes:      nodes,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, c := range doc.Controls {
		if c.ControlID != "SC-7" {
			continue
		}
		if c.Source != narrative.SourceDeviceNotes {
			t.Errorf("SC-7 source = %q, want device_notes", c.Source)
		}
		if c.Narrative != "Default-deny ruleset reviewed quarterly." {
			t.Errorf("SC-7 narrative = %q", c.Narrative)
		}
		if len(c.Devices) != 1 || c.Devices[0].Name != "Edge Firewall" {
			t.Errorf("SC-7 contributors = %+v", c.Devices)
		}
		return
	}
	t.Fatal("SC-7 not in document")
}

func TestBuild_CancelledContext(t *testing.T) {
	b := testBuilder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, &GenerateRequest{
		SystemName: "Sys",
		Baseline:   "low",
		Nodes:      testNodes(),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBuild_NISTTextPolicy(t *testing.T) {
	b := testBuilder()

	doc, err := b.Build(context.Background(), &GenerateRequest{
		SystemName:     "Sys",
		Baseline:       "low",
		UneditedPolicy: "nist_text",
		Nodes:          testNodes(),
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, c := range doc.Controls {
		if c.Source != narrative.SourceCatalogText {
			t.Errorf("%s source = %q, want catalog_default", c.ControlID, c.Source)
		}
	}
}
