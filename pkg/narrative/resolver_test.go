package narrative

import (
	"context"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// recordingProvider counts calls so tests can verify the chain never
// reaches the enhancement tier
type recordingProvider struct {
	calls int
	text  string
}

func (p *recordingProvider) FamilyNarrative(_ context.Context, _ string) (string, error) {
	p.calls++
	return p.text, nil
}

func narrativeTestGraph() *diagram.Graph {
	nodes := []diagram.Node{
		{ID: "fw-1", Kind: diagram.KindDevice, Name: "Edge Firewall", Type: "firewall",
			Compliance: diagram.ComplianceInfo{
				AssignedControls: []string{"SC-7"},
				ControlNotes:     map[string]string{"SC-7": "Edge firewall denies all inbound by default."},
			}},
		{ID: "fw-2", Kind: diagram.KindDevice, Name: "Core Firewall", Type: "firewall",
			Compliance: diagram.ComplianceInfo{
				AssignedControls: []string{"sc-07"},
				ControlNotes:     map[string]string{"sc-07": "Core firewall segments internal VLANs."},
			}},
		{ID: "db-1", Kind: diagram.KindDevice, Name: "DB", Type: "database"},
	}
	return diagram.NewGraph(nodes, nil)
}

func sc7Entry() catalog.Entry {
	entry, _ := catalog.Builtin().Lookup("SC-7")
	return entry
}

func TestResolve_CustomNarrativeIsAuthoritative(t *testing.T) {
	provider := &recordingProvider{text: "enhanced text"}
	r := &Resolver{Policy: PolicyPlaceholder, Enhancer: provider}
	custom := &Custom{
		Text:                 "We maintain a managed boundary.",
		ImplementationStatus: "implemented",
		DeviceIDs:            []string{"fw-1"},
	}

	// The graph carries device notes for SC-7 that must never be consulted
	resolved, ok := r.Resolve(context.Background(), sc7Entry(), custom, narrativeTestGraph(), &topology.Summary{})
	if !ok {
		t.Fatal("Custom narrative dropped")
	}
	if resolved.Source != SourceCustom {
		t.Errorf("Source = %s, want custom", resolved.Source)
	}
	if resolved.Text != custom.Text {
		t.Errorf("Text = %q", resolved.Text)
	}
	if resolved.ImplementationStatus != "implemented" {
		t.Errorf("Status = %q", resolved.ImplementationStatus)
	}
	if provider.calls != 0 {
		t.Errorf("Enhancement provider called %d times despite custom narrative", provider.calls)
	}
}

func TestResolve_SingleDeviceNoteVerbatim(t *testing.T) {
	r := &Resolver{}
	nodes := []diagram.Node{
		{ID: "fw-1", Kind: diagram.KindDevice, Name: "Edge Firewall", Type: "firewall",
			Compliance: diagram.ComplianceInfo{
				AssignedControls: []string{"SC-7"},
				ControlNotes:     map[string]string{"SC-7": "Single contributor note."},
			}},
	}
	g := diagram.NewGraph(nodes, nil)

	resolved, ok := r.Resolve(context.Background(), sc7Entry(), nil, g, &topology.Summary{})
	if !ok || resolved.Source != SourceDeviceNotes {
		t.Fatalf("resolved = %+v, ok = %v", resolved, ok)
	}
	// One contributing device: the note is used verbatim, no name prefix
	if resolved.Text != "Single contributor note." {
		t.Errorf("Text = %q, want verbatim note", resolved.Text)
	}
	if len(resolved.DeviceIDs) != 1 || resolved.DeviceIDs[0] != "fw-1" {
		t.Errorf("DeviceIDs = %v", resolved.DeviceIDs)
	}
}

func TestResolve_MultiDeviceNotesConcatenateInNodeOrder(t *testing.T) {
	r := &Resolver{}

	resolved, ok := r.Resolve(context.Background(), sc7Entry(), nil, narrativeTestGraph(), &topology.Summary{})
	if !ok || resolved.Source != SourceDeviceNotes {
		t.Fatalf("resolved = %+v, ok = %v", resolved, ok)
	}

	want := "Edge Firewall: Edge firewall denies all inbound by default.\n\nCore Firewall: Core firewall segments internal VLANs."
	if resolved.Text != want {
		t.Errorf("Text = %q\nwant %q", resolved.Text, want)
	}
}

func TestResolve_SortContributors(t *testing.T) {
	r := &Resolver{SortContributors: true}

	resolved, _ := r.Resolve(context.Background(), sc7Entry(), nil, narrativeTestGraph(), &topology.Summary{})
	// "Core Firewall" sorts before "Edge Firewall"
	if !strings.HasPrefix(resolved.Text, "Core Firewall:") {
		t.Errorf("Sorted aggregation starts with %q", resolved.Text[:30])
	}
}

func TestResolve_UnnormalizedAssignmentsStillAttach(t *testing.T) {
	// fw-2 assigns "sc-07" with a note keyed "sc-07"; both must attach to SC-7
	r := &Resolver{}
	resolved, _ := r.Resolve(context.Background(), sc7Entry(), nil, narrativeTestGraph(), &topology.Summary{})
	if len(resolved.DeviceIDs) != 2 {
		t.Errorf("DeviceIDs = %v, want both firewalls", resolved.DeviceIDs)
	}
}

func TestResolve_PolicyExclude(t *testing.T) {
	r := &Resolver{Policy: PolicyExclude}
	entry, _ := catalog.Builtin().Lookup("PE-3") // nothing covers PE-3

	_, ok := r.Resolve(context.Background(), entry, nil, narrativeTestGraph(), &topology.Summary{})
	if ok {
		t.Error("PolicyExclude must drop uncovered controls")
	}
}

func TestResolve_PolicyNISTText(t *testing.T) {
	r := &Resolver{Policy: PolicyNISTText}
	entry, _ := catalog.Builtin().Lookup("PE-3")

	resolved, ok := r.Resolve(context.Background(), entry, nil, narrativeTestGraph(), &topology.Summary{})
	if !ok || resolved.Source != SourceCatalogText {
		t.Fatalf("resolved = %+v, ok = %v", resolved, ok)
	}
	if resolved.Text != entry.DefaultText {
		t.Errorf("Text = %q, want catalog default", resolved.Text)
	}
}

func TestResolve_PlaceholderPrefersEnhancer(t *testing.T) {
	provider := &recordingProvider{text: "Enhanced PE narrative."}
	r := &Resolver{Policy: PolicyPlaceholder, Enhancer: provider}
	entry, _ := catalog.Builtin().Lookup("PE-3")

	resolved, ok := r.Resolve(context.Background(), entry, nil, narrativeTestGraph(), &topology.Summary{})
	if !ok || resolved.Source != SourceEnhanced {
		t.Fatalf("resolved = %+v, ok = %v", resolved, ok)
	}
	if resolved.Text != "Enhanced PE narrative." {
		t.Errorf("Text = %q", resolved.Text)
	}
	if provider.calls != 1 {
		t.Errorf("Provider calls = %d, want 1", provider.calls)
	}
}

func TestResolve_EmptyEnhancerFallsToGenerator(t *testing.T) {
	provider := &recordingProvider{text: ""}
	r := &Resolver{Enhancer: provider}
	entry, _ := catalog.Builtin().Lookup("SC-8")
	summary := &topology.Summary{EncryptedEdgeCount: 3}

	resolved, ok := r.Resolve(context.Background(), entry, nil, diagram.NewGraph(nil, nil), summary)
	if !ok || resolved.Source != SourceGenerated {
		t.Fatalf("resolved = %+v, ok = %v", resolved, ok)
	}
	if !strings.Contains(resolved.Text, "3 encrypted") {
		t.Errorf("Generated SC text should cite the encrypted count: %q", resolved.Text)
	}
}

func TestGenerateFamilyText_AllFamiliesCovered(t *testing.T) {
	families := []string{
		"AC", "AT", "AU", "CA", "CM", "CP", "IA", "IR", "MA", "MP",
		"PE", "PL", "PM", "PS", "RA", "SA", "SC", "SI", "SR",
	}
	summary := &topology.Summary{DeviceCount: 4}

	generic := GenerateFamilyText("XX", summary)
	for _, family := range families {
		text := GenerateFamilyText(family, summary)
		if text == "" {
			t.Errorf("Family %s generated empty text", family)
		}
		if text == generic {
			t.Errorf("Family %s fell through to the generic branch", family)
		}
	}
}

func TestGenerateFamilyText_CitesCounts(t *testing.T) {
	summary := &topology.Summary{
		Devices: []topology.DeviceDetail{
			{Type: "firewall"}, {Type: "firewall"}, {Type: "server"},
		},
		Zones:               []topology.ZoneSummary{{}, {}, {}},
		FirewalledEdgeCount: 5,
		Edges:               make([]topology.EdgeDetail, 7),
	}

	ac := GenerateFamilyText("AC", summary)
	if !strings.Contains(ac, "2 firewall") || !strings.Contains(ac, "3 security zone") {
		t.Errorf("AC text should cite firewall and zone counts: %q", ac)
	}

	sc := GenerateFamilyText("SC", summary)
	if !strings.Contains(sc, "5 firewall-mediated") {
		t.Errorf("SC text should cite the firewall-mediated connection count: %q", sc)
	}
}

func TestGenerateFamilyText_NilSummary(t *testing.T) {
	if text := GenerateFamilyText("AC", nil); text == "" {
		t.Error("Nil summary must still produce text")
	}
}

func TestGenerateFamilyText_CaseInsensitiveFamily(t *testing.T) {
	s := &topology.Summary{}
	if GenerateFamilyText("sc", s) != GenerateFamilyText("SC", s) {
		t.Error("Family dispatch should be case-insensitive")
	}
}
