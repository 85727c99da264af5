package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// Item is one inventory line item
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DeviceID    string `json:"deviceId,omitempty"`
	Quantity    int    `json:"quantity"`
}

// Snapshot is the categorized inventory consumed verbatim into the
// generated document
type Snapshot struct {
	Hardware []Item `json:"hardware"`
	Software []Item `json:"software"`
	Network  []Item `json:"network"`
	Security []Item `json:"security"`
}

// Extractor turns a node set into a categorized inventory snapshot
type Extractor interface {
	Extract(g *diagram.Graph) Snapshot
}

// BasicExtractor derives the inventory directly from node metadata
type BasicExtractor struct{}

// NewBasicExtractor returns the default extractor
func NewBasicExtractor() *BasicExtractor {
	return &BasicExtractor{}
}

// Extract walks the device nodes once and buckets line items. Software
// items aggregate by operating system; everything else is one item per
// device.
func (e *BasicExtractor) Extract(g *diagram.Graph) Snapshot {
	snapshot := Snapshot{
		Hardware: make([]Item, 0),
		Software: make([]Item, 0),
		Network:  make([]Item, 0),
		Security: make([]Item, 0),
	}

	osCounts := make(map[string]int)
	for _, device := range g.Devices() {
		hw := device.Hardware
		description := strings.TrimSpace(strings.Join(nonEmpty(hw.Manufacturer, hw.Model, device.Type), " "))
		if description == "" {
			description = "unspecified hardware"
		}
		snapshot.Hardware = append(snapshot.Hardware, Item{
			Name:        device.Name,
			Description: description,
			DeviceID:    device.ID,
			Quantity:    1,
		})

		if hw.OperatingSystem != "" {
			key := strings.TrimSpace(hw.OperatingSystem + " " + hw.OSVersion)
			osCounts[key]++
		}

		if device.Network.IPAddress != "" || device.Network.Hostname != "" {
			snapshot.Network = append(snapshot.Network, Item{
				Name:        device.Name,
				Description: networkDescription(device),
				DeviceID:    device.ID,
				Quantity:    1,
			})
		}

		if topology.CategorizeDevice(device.Type) == topology.CategorySecurity {
			snapshot.Security = append(snapshot.Security, Item{
				Name:        device.Name,
				Description: device.Type,
				DeviceID:    device.ID,
				Quantity:    1,
			})
		}
	}

	// Stable software listing regardless of node order
	osNames := make([]string, 0, len(osCounts))
	for name := range osCounts {
		osNames = append(osNames, name)
	}
	sort.Strings(osNames)
	for _, name := range osNames {
		snapshot.Software = append(snapshot.Software, Item{
			Name:     name,
			Quantity: osCounts[name],
		})
	}

	return snapshot
}

func networkDescription(device *diagram.Node) string {
	parts := make([]string, 0, 3)
	if device.Network.Hostname != "" {
		parts = append(parts, device.Network.Hostname)
	}
	if device.Network.IPAddress != "" {
		parts = append(parts, device.Network.IPAddress)
	}
	if device.Network.VLAN != "" {
		parts = append(parts, fmt.Sprintf("VLAN %s", device.Network.VLAN))
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
