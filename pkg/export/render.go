package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dd0wney/cluso-compliance/pkg/document"
	"github.com/dd0wney/cluso-compliance/pkg/inventory"
)

// Renderer serializes an assembled document into one output format
type Renderer interface {
	// Render produces the artifact bytes for the document
	Render(doc *document.SSPDocument) ([]byte, error)
	// ContentType is the MIME type of the rendered artifact
	ContentType() string
	// Extension is the file extension without the dot
	Extension() string
}

// NewRenderer returns the renderer for a format name
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "json":
		return &JSONRenderer{Indent: true}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "text", "txt":
		return &TextRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// JSONRenderer emits the document as JSON
type JSONRenderer struct {
	Indent bool
}

func (r *JSONRenderer) Render(doc *document.SSPDocument) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if r.Indent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *JSONRenderer) ContentType() string { return "application/json" }
func (r *JSONRenderer) Extension() string   { return "json" }

// TextRenderer emits a plain-text rendering of the document
type TextRenderer struct{}

func (r *TextRenderer) Render(doc *document.SSPDocument) ([]byte, error) {
	var buf bytes.Buffer
	writeText(&buf, doc)
	return buf.Bytes(), nil
}

func (r *TextRenderer) ContentType() string { return "text/plain" }
func (r *TextRenderer) Extension() string   { return "txt" }

func writeText(w io.Writer, doc *document.SSPDocument) {
	fmt.Fprintf(w, "System Security Plan: %s\n", doc.Metadata.SystemName)
	if doc.Metadata.Organization != "" {
		fmt.Fprintf(w, "Organization: %s\n", doc.Metadata.Organization)
	}
	fmt.Fprintf(w, "Baseline: %s\n", doc.Metadata.Baseline)
	fmt.Fprintf(w, "Generated: %s\n", doc.Metadata.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Document ID: %s\n\n", doc.Metadata.DocumentID)

	if doc.Summary != nil {
		fmt.Fprintf(w, "Topology:\n")
		fmt.Fprintf(w, "  Devices: %d\n", doc.Summary.DeviceCount)
		fmt.Fprintf(w, "  Boundaries: %d\n", doc.Summary.BoundaryCount)
		fmt.Fprintf(w, "  Connections: %d\n", len(doc.Summary.Edges))
		fmt.Fprintf(w, "  Encrypted Connections: %d\n\n", doc.Summary.EncryptedEdgeCount)
	}

	fmt.Fprintf(w, "Controls:\n")
	for _, control := range doc.Controls {
		fmt.Fprintf(w, "\n[%s] %s - %s\n", control.Source, control.ControlID, control.Title)
		if control.ImplementationStatus != "" {
			fmt.Fprintf(w, "  Status: %s\n", control.ImplementationStatus)
		}
		fmt.Fprintf(w, "  %s\n", control.Narrative)
		if len(control.Devices) > 0 {
			fmt.Fprintf(w, "  Devices: %d referenced\n", len(control.Devices))
		}
	}
}

// MarkdownRenderer emits a Markdown rendering of the document
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(doc *document.SSPDocument) ([]byte, error) {
	var buf bytes.Buffer
	writeMarkdown(&buf, doc)
	return buf.Bytes(), nil
}

func (r *MarkdownRenderer) ContentType() string { return "text/markdown" }
func (r *MarkdownRenderer) Extension() string   { return "md" }

func writeMarkdown(w io.Writer, doc *document.SSPDocument) {
	fmt.Fprintf(w, "# System Security Plan: %s\n\n", doc.Metadata.SystemName)
	fmt.Fprintf(w, "**Generated:** %s\n\n", doc.Metadata.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "**Baseline:** %s\n\n", doc.Metadata.Baseline)

	if doc.Summary != nil {
		fmt.Fprintf(w, "## System Overview\n\n")
		fmt.Fprintf(w, "| Metric | Value |\n")
		fmt.Fprintf(w, "|--------|-------|\n")
		fmt.Fprintf(w, "| Devices | %d |\n", doc.Summary.DeviceCount)
		fmt.Fprintf(w, "| Security Boundaries | %d |\n", doc.Summary.BoundaryCount)
		fmt.Fprintf(w, "| Connections | %d |\n", len(doc.Summary.Edges))
		fmt.Fprintf(w, "| Encrypted Connections | %d |\n", doc.Summary.EncryptedEdgeCount)
		fmt.Fprintf(w, "| Cross-Zone Connections | %d |\n\n", doc.Summary.CrossZoneEdgeCount)

		if len(doc.Summary.Zones) > 0 {
			fmt.Fprintf(w, "### Security Zones\n\n")
			for _, zone := range doc.Summary.Zones {
				fmt.Fprintf(w, "- **%s** (%s): %d device(s)\n", zone.Name, zone.ZoneType, zone.DeviceCount)
			}
			fmt.Fprintf(w, "\n")
		}
	}

	fmt.Fprintf(w, "## Control Implementations\n\n")
	family := ""
	for _, control := range doc.Controls {
		if control.Family != family {
			family = control.Family
			fmt.Fprintf(w, "### %s — %s\n\n", control.Family, control.FamilyName)
		}
		fmt.Fprintf(w, "#### %s: %s\n\n", control.ControlID, control.Title)
		if control.ImplementationStatus != "" {
			fmt.Fprintf(w, "**Status:** %s\n\n", control.ImplementationStatus)
		}
		fmt.Fprintf(w, "%s\n\n", control.Narrative)
		if len(control.Devices) > 0 {
			fmt.Fprintf(w, "**Referenced devices:**\n\n")
			for _, d := range control.Devices {
				fmt.Fprintf(w, "- %s (%s)\n", d.Name, d.Type)
			}
			fmt.Fprintf(w, "\n")
		}
		fmt.Fprintf(w, "---\n\n")
	}

	if len(doc.Inventory.Hardware) > 0 || len(doc.Inventory.Software) > 0 {
		fmt.Fprintf(w, "## Inventory\n\n")
		writeInventorySection(w, "Hardware", doc.Inventory.Hardware)
		writeInventorySection(w, "Software", doc.Inventory.Software)
		writeInventorySection(w, "Network", doc.Inventory.Network)
		writeInventorySection(w, "Security", doc.Inventory.Security)
	}
}

func writeInventorySection(w io.Writer, title string, items []inventory.Item) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "### %s\n\n", title)
	for _, item := range items {
		if item.Quantity > 1 {
			fmt.Fprintf(w, "- %s (x%d)\n", item.Name, item.Quantity)
		} else {
			fmt.Fprintf(w, "- %s\n", item.Name)
		}
	}
	fmt.Fprintf(w, "\n")
}
