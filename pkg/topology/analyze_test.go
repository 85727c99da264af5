package topology

import (
	"testing"

	"github.com/dd0wney/cluso-compliance/pkg/diagram"
)

func analyzerTestGraph() *diagram.Graph {
	nodes := []diagram.Node{
		{ID: "dmz", Kind: diagram.KindBoundary, Name: "DMZ", ZoneType: "dmz"},
		{ID: "lan", Kind: diagram.KindBoundary, Name: "Internal LAN", ZoneType: "internal"},
		{ID: "fw-1", Kind: diagram.KindDevice, Name: "Edge Firewall", Type: "firewall", ParentID: "dmz",
			Security: diagram.SecurityPosture{Monitored: true}},
		{ID: "web-1", Kind: diagram.KindDevice, Name: "Web Server", Type: "web server", ParentID: "dmz",
			Hardware: diagram.HardwareInfo{OperatingSystem: "Ubuntu 22.04"},
			Security: diagram.SecurityPosture{EncryptionAtRest: true, EncryptionInTransit: true}},
		{ID: "db-1", Kind: diagram.KindDevice, Name: "DB Server", Type: "database server", ParentID: "lan",
			Hardware: diagram.HardwareInfo{OperatingSystem: "Ubuntu 22.04"},
			Security: diagram.SecurityPosture{EncryptionAtRest: true, BackupsEnabled: true}},
		{ID: "ws-1", Kind: diagram.KindDevice, Name: "Admin Workstation", Type: "workstation", ParentID: "lan",
			Hardware: diagram.HardwareInfo{OperatingSystem: "Windows 11"},
			Security: diagram.SecurityPosture{MFAEnabled: true}},
		{ID: "drifter", Kind: diagram.KindDevice, Name: "Drifter", Type: "laptop"},
	}
	edges := []diagram.Edge{
		{SourceID: "web-1", TargetID: "db-1", Protocol: "TLS", Firewalled: true}, // encrypted + cross-zone
		{SourceID: "ws-1", TargetID: "db-1"},                                     // plain, same zone
		{SourceID: "fw-1", TargetID: "web-1", LinkType: "site VPN"},              // encrypted, same zone
		{SourceID: "drifter", TargetID: "web-1"},                                 // endpoint without zone
	}
	return diagram.NewGraph(nodes, edges)
}

func TestAnalyze_Zones(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	if summary.BoundaryCount != 2 {
		t.Fatalf("BoundaryCount = %d, want 2", summary.BoundaryCount)
	}
	if len(summary.Zones) != 2 {
		t.Fatalf("len(Zones) = %d, want 2", len(summary.Zones))
	}

	dmz := summary.Zones[0]
	if dmz.Name != "DMZ" || dmz.DeviceCount != 2 {
		t.Errorf("DMZ zone = %+v, want 2 devices", dmz)
	}
	if len(dmz.DeviceNames) != 2 || dmz.DeviceNames[0] != "Edge Firewall" {
		t.Errorf("DMZ device names = %v", dmz.DeviceNames)
	}
}

func TestAnalyze_Histograms(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	if summary.DeviceCount != 5 {
		t.Errorf("DeviceCount = %d, want 5", summary.DeviceCount)
	}
	if summary.DevicesByType["firewall"] != 1 {
		t.Errorf("DevicesByType[firewall] = %d, want 1", summary.DevicesByType["firewall"])
	}
	if summary.DevicesByOS["Ubuntu 22.04"] != 2 {
		t.Errorf("DevicesByOS[Ubuntu 22.04] = %d, want 2", summary.DevicesByOS["Ubuntu 22.04"])
	}
}

func TestAnalyze_Buckets(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	if len(summary.Servers) != 2 {
		t.Errorf("Servers = %d, want 2 (web + db)", len(summary.Servers))
	}
	// The firewall lands in network equipment alongside routers/switches
	if len(summary.NetworkEquipment) != 1 {
		t.Errorf("NetworkEquipment = %d, want 1", len(summary.NetworkEquipment))
	}
	if len(summary.Endpoints) != 2 {
		t.Errorf("Endpoints = %d, want 2 (workstation + laptop)", len(summary.Endpoints))
	}
}

func TestAnalyze_DeviceDetailZoneFacts(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	var db *DeviceDetail
	for i := range summary.Devices {
		if summary.Devices[i].ID == "db-1" {
			db = &summary.Devices[i]
		}
	}
	if db == nil {
		t.Fatal("db-1 missing from device details")
	}
	if db.ZoneName != "Internal LAN" || db.ZoneType != "internal" {
		t.Errorf("db-1 zone facts = %q/%q, want Internal LAN/internal", db.ZoneName, db.ZoneType)
	}

	// A device outside every boundary carries empty zone fields
	for _, d := range summary.Devices {
		if d.ID == "drifter" && (d.ZoneID != "" || d.ZoneName != "") {
			t.Errorf("drifter should have no zone, got %+v", d)
		}
	}
}

func TestAnalyze_EdgeClassification(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	if summary.EncryptedEdgeCount != 2 {
		t.Errorf("EncryptedEdgeCount = %d, want 2", summary.EncryptedEdgeCount)
	}
	if summary.CrossZoneEdgeCount != 1 {
		t.Errorf("CrossZoneEdgeCount = %d, want 1", summary.CrossZoneEdgeCount)
	}
	if summary.FirewalledEdgeCount != 1 {
		t.Errorf("FirewalledEdgeCount = %d, want 1", summary.FirewalledEdgeCount)
	}

	// Edge to a zone-less endpoint never counts as cross-zone
	last := summary.Edges[3]
	if last.CrossZone {
		t.Error("Edge to zone-less device classified cross-zone")
	}
}

func TestEdgeEncrypted_Indicators(t *testing.T) {
	tests := []struct {
		name string
		edge diagram.Edge
		want bool
	}{
		{"protocol set", diagram.Edge{Protocol: "HTTPS"}, true},
		{"auth required", diagram.Edge{AuthRequired: true}, true},
		{"firewalled", diagram.Edge{Firewalled: true}, true},
		{"vpn link type", diagram.Edge{LinkType: "Site-to-site VPN"}, true},
		{"bare edge", diagram.Edge{}, false},
		{"plain link type", diagram.Edge{LinkType: "ethernet"}, false},
	}
	for _, tt := range tests {
		if got := EdgeEncrypted(tt.edge); got != tt.want {
			t.Errorf("%s: EdgeEncrypted = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAnalyze_SecurityTallies(t *testing.T) {
	summary := Analyze(analyzerTestGraph())

	if summary.Security.MFAEnabled != 1 {
		t.Errorf("MFA tally = %d, want 1", summary.Security.MFAEnabled)
	}
	if summary.Security.EncryptionAtRest != 2 {
		t.Errorf("At-rest tally = %d, want 2", summary.Security.EncryptionAtRest)
	}
	if summary.Security.Monitored != 1 {
		t.Errorf("Monitored tally = %d, want 1", summary.Security.Monitored)
	}
}

func TestAnalyze_EmptyGraph(t *testing.T) {
	summary := Analyze(diagram.NewGraph(nil, nil))

	if summary.DeviceCount != 0 || summary.BoundaryCount != 0 {
		t.Errorf("Empty graph summary = %+v, want zeroes", summary)
	}
	if summary.Zones == nil || summary.Devices == nil {
		t.Error("Empty graph must still yield non-nil slices")
	}
}

func TestSummary_FirewallCount(t *testing.T) {
	summary := Analyze(analyzerTestGraph())
	if summary.FirewallCount() != 1 {
		t.Errorf("FirewallCount = %d, want 1", summary.FirewallCount())
	}
}
