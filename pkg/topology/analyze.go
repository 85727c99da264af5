package topology

import (
	"strings"

	"github.com/dd0wney/cluso-compliance/pkg/diagram"
)

// ZoneSummary describes one boundary and its immediate device children
type ZoneSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ZoneType    string   `json:"zoneType,omitempty"`
	DeviceCount int      `json:"deviceCount"`
	DeviceNames []string `json:"deviceNames"`
}

// DeviceDetail is a per-device row enriched with one-hop zone facts
type DeviceDetail struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Category        DeviceCategory `json:"category"`
	OperatingSystem string         `json:"operatingSystem,omitempty"`
	IPAddress       string         `json:"ipAddress,omitempty"`
	ZoneID          string         `json:"zoneId,omitempty"`
	ZoneName        string         `json:"zoneName,omitempty"`
	ZoneType        string         `json:"zoneType,omitempty"`
}

// EdgeDetail is a classified connection between two devices
type EdgeDetail struct {
	SourceID  string `json:"sourceId"`
	TargetID  string `json:"targetId"`
	Protocol  string `json:"protocol,omitempty"`
	Encrypted bool   `json:"encrypted"`
	CrossZone bool   `json:"crossZone"`
}

// SecurityTally counts devices asserting each posture flag
type SecurityTally struct {
	MFAEnabled          int `json:"mfaEnabled"`
	EncryptionAtRest    int `json:"encryptionAtRest"`
	EncryptionInTransit int `json:"encryptionInTransit"`
	BackupsEnabled      int `json:"backupsEnabled"`
	Monitored           int `json:"monitored"`
}

// Summary is the analyzer's structured output: everything the
// recommendation engine and the narrative generators consume
type Summary struct {
	DeviceCount   int            `json:"deviceCount"`
	BoundaryCount int            `json:"boundaryCount"`
	Zones         []ZoneSummary  `json:"zones"`
	DevicesByType map[string]int `json:"devicesByType"`
	DevicesByOS   map[string]int `json:"devicesByOS"`

	Servers          []DeviceDetail `json:"servers"`
	NetworkEquipment []DeviceDetail `json:"networkEquipment"`
	Endpoints        []DeviceDetail `json:"endpoints"`

	Devices []DeviceDetail `json:"devices"`
	Edges   []EdgeDetail   `json:"edges"`

	EncryptedEdgeCount  int           `json:"encryptedEdgeCount"`
	CrossZoneEdgeCount  int           `json:"crossZoneEdgeCount"`
	FirewalledEdgeCount int           `json:"firewalledEdgeCount"`
	Security            SecurityTally `json:"security"`
}

// FirewallCount returns the number of devices classified as firewalls
func (s *Summary) FirewallCount() int {
	count := 0
	for _, d := range s.Devices {
		if strings.Contains(strings.ToLower(d.Type), "firewall") {
			count++
		}
	}
	return count
}

// Analyze walks the graph snapshot once and produces the structured summary.
// It never fails: empty graphs, dangling parents, and unknown edge endpoints
// all degrade to zero counts or omitted zone fields.
func Analyze(g *diagram.Graph) *Summary {
	summary := &Summary{
		DevicesByType:    make(map[string]int),
		DevicesByOS:      make(map[string]int),
		Zones:            make([]ZoneSummary, 0),
		Servers:          make([]DeviceDetail, 0),
		NetworkEquipment: make([]DeviceDetail, 0),
		Endpoints:        make([]DeviceDetail, 0),
		Devices:          make([]DeviceDetail, 0),
		Edges:            make([]EdgeDetail, 0),
	}

	for _, boundary := range g.Boundaries() {
		summary.BoundaryCount++
		children := g.ChildDevices(boundary.ID)
		zone := ZoneSummary{
			ID:          boundary.ID,
			Name:        boundary.Name,
			ZoneType:    boundary.ZoneType,
			DeviceCount: len(children),
			DeviceNames: make([]string, 0, len(children)),
		}
		for _, child := range children {
			zone.DeviceNames = append(zone.DeviceNames, child.Name)
		}
		summary.Zones = append(summary.Zones, zone)
	}

	for _, device := range g.Devices() {
		summary.DeviceCount++

		detail := DeviceDetail{
			ID:              device.ID,
			Name:            device.Name,
			Type:            device.Type,
			Category:        CategorizeDevice(device.Type),
			OperatingSystem: device.Hardware.OperatingSystem,
			IPAddress:       device.Network.IPAddress,
		}
		// Zone membership is the one-hop parent, even though nesting depth
		// walks the full chain
		if parent := g.Parent(device.ID); parent != nil && parent.IsBoundary() {
			detail.ZoneID = parent.ID
			detail.ZoneName = parent.Name
			detail.ZoneType = parent.ZoneType
		}
		summary.Devices = append(summary.Devices, detail)

		if device.Type != "" {
			summary.DevicesByType[strings.ToLower(device.Type)]++
		}
		if os := device.Hardware.OperatingSystem; os != "" {
			summary.DevicesByOS[os]++
		}

		switch detail.Category {
		case CategoryServer:
			summary.Servers = append(summary.Servers, detail)
		case CategoryNetwork, CategorySecurity:
			summary.NetworkEquipment = append(summary.NetworkEquipment, detail)
		case CategoryEndpoint:
			summary.Endpoints = append(summary.Endpoints, detail)
		}

		if device.Security.MFAEnabled {
			summary.Security.MFAEnabled++
		}
		if device.Security.EncryptionAtRest {
			summary.Security.EncryptionAtRest++
		}
		if device.Security.EncryptionInTransit {
			summary.Security.EncryptionInTransit++
		}
		if device.Security.BackupsEnabled {
			summary.Security.BackupsEnabled++
		}
		if device.Security.Monitored {
			summary.Security.Monitored++
		}
	}

	for _, edge := range g.Edges {
		detail := EdgeDetail{
			SourceID:  edge.SourceID,
			TargetID:  edge.TargetID,
			Protocol:  edge.Protocol,
			Encrypted: EdgeEncrypted(edge),
			CrossZone: edgeCrossZone(g, edge),
		}
		summary.Edges = append(summary.Edges, detail)
		if detail.Encrypted {
			summary.EncryptedEdgeCount++
		}
		if detail.CrossZone {
			summary.CrossZoneEdgeCount++
		}
		if edge.Firewalled {
			summary.FirewalledEdgeCount++
		}
	}

	return summary
}

// EdgeEncrypted reports whether any of the edge's protection indicators
// holds: a protocol indicator, the auth-required flag, the firewalled flag,
// or a link type containing "vpn"
func EdgeEncrypted(edge diagram.Edge) bool {
	if edge.Protocol != "" {
		return true
	}
	if edge.AuthRequired || edge.Firewalled {
		return true
	}
	return strings.Contains(strings.ToLower(edge.LinkType), "vpn")
}

// edgeCrossZone reports whether the edge's endpoints resolve (one hop) to
// different boundaries. Endpoints without a boundary parent, or that do not
// resolve at all, never count as cross-zone.
func edgeCrossZone(g *diagram.Graph, edge diagram.Edge) bool {
	sourceZone := boundaryOf(g, edge.SourceID)
	targetZone := boundaryOf(g, edge.TargetID)
	if sourceZone == "" || targetZone == "" {
		return false
	}
	return sourceZone != targetZone
}

func boundaryOf(g *diagram.Graph, id string) string {
	parent := g.Parent(id)
	if parent == nil || !parent.IsBoundary() {
		return ""
	}
	return parent.ID
}
