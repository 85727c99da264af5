package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/devicematch"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/document"
	"github.com/dd0wney/cluso-compliance/pkg/export"
	"github.com/dd0wney/cluso-compliance/pkg/logging"
	"github.com/dd0wney/cluso-compliance/pkg/narrative"
	"github.com/dd0wney/cluso-compliance/pkg/recommend"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

const topologyYAML = `
nodes:
  - id: dmz
    kind: boundary
    name: DMZ
    zoneType: dmz
  - id: internal
    kind: boundary
    name: Internal
    zoneType: internal
  - id: fw-1
    kind: device
    name: Edge Firewall
    type: firewall
    parentId: dmz
    compliance:
      assignedControls: ["SC-7"]
      controlNotes:
        SC-7: "Stateful inspection with a default-deny policy."
  - id: web-1
    kind: device
    name: Web Server
    type: server
    parentId: dmz
    hardware:
      operatingSystem: Ubuntu
      osVersion: "24.04"
  - id: db-1
    kind: device
    name: Customer Database
    type: database
    parentId: internal
    hardware:
      operatingSystem: PostgreSQL Appliance
edges:
  - sourceId: fw-1
    targetId: web-1
    protocol: https
    port: 443
    firewalled: true
  - sourceId: web-1
    targetId: db-1
    protocol: tls
    port: 5432
`

// TestTopologyToArtifactPipeline walks the full path: YAML topology in,
// sealed SSP artifact on disk out.
func TestTopologyToArtifactPipeline(t *testing.T) {
	dir := t.TempDir()
	topoPath := filepath.Join(dir, "topology.yaml")
	require.NoError(t, os.WriteFile(topoPath, []byte(topologyYAML), 0o644))

	t.Log("Step 1: Loading topology...")
	nodes, edges, err := diagram.LoadFile(topoPath)
	require.NoError(t, err)
	require.Len(t, nodes, 5)
	require.Len(t, edges, 2)

	t.Log("Step 2: Analyzing topology...")
	g := diagram.NewGraph(nodes, edges)
	summary := topology.Analyze(g)
	assert.Equal(t, 3, summary.DeviceCount)
	assert.Equal(t, 2, summary.BoundaryCount)
	assert.Equal(t, 1, summary.FirewallCount())
	assert.Equal(t, 2, summary.EncryptedEdgeCount)
	assert.Equal(t, 1, summary.CrossZoneEdgeCount)

	t.Log("Step 3: Recommending controls...")
	recs := recommend.Recommend(g)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), recommend.MaxRecommendations)
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ControlID)
	}
	// firewall in a DMZ must surface boundary protection
	assert.Contains(t, ids, "SC-7")
	assert.Contains(t, ids, "AC-4")

	t.Log("Step 4: Matching device types...")
	cache := devicematch.NewIconCache()
	cache.Warm(catalog.BuiltinDeviceTypes().DeviceTypes())
	matcher := devicematch.NewMatcher(cache)
	result := matcher.Match(devicematch.Request{Type: "firewall"})
	assert.True(t, result.Matched)
	assert.Greater(t, result.Score, 0.2)

	t.Log("Step 5: Building the document...")
	builder := document.NewBuilder()
	builder.Logger = logging.NewNopLogger()
	builder.Metrics = nil

	doc, err := builder.Build(context.Background(), &document.GenerateRequest{
		SystemName:   "Customer Portal",
		Organization: "Acme Corp",
		Baseline:     "moderate",
		Nodes:        nodes,
		Edges:        edges,
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.Controls)
	assert.NotEmpty(t, doc.Metadata.DocumentID)

	var sc7 *document.ResolvedControl
	for i := range doc.Controls {
		if doc.Controls[i].ControlID == "SC-7" {
			sc7 = &doc.Controls[i]
		}
	}
	require.NotNil(t, sc7, "SC-7 must be in the moderate baseline")
	assert.Equal(t, narrative.SourceDeviceNotes, sc7.Source)
	assert.Equal(t, "Stateful inspection with a default-deny policy.", sc7.Narrative)
	require.Len(t, sc7.Devices, 1)
	assert.Equal(t, "Edge Firewall", sc7.Devices[0].Name)

	t.Log("Step 6: Checking inventory...")
	assert.NotEmpty(t, doc.Inventory.Hardware)
	assert.NotEmpty(t, doc.Inventory.Software)
	assert.NotEmpty(t, doc.Inventory.Security)

	t.Log("Step 7: Exporting the artifact...")
	renderer, err := export.NewRenderer("markdown")
	require.NoError(t, err)

	exporter := export.NewExporter(renderer, export.NewLocalStore(dir))
	exporter.Logger = logging.NewNopLogger()
	exporter.Metrics = nil
	exporter.Sealer = &export.Sealer{Passphrase: "e2e-secret"}

	exportResult := exporter.Export(context.Background(), doc, "ssp.md.enc")
	require.True(t, exportResult.Success, "export failed: %s", exportResult.Error)
	assert.Equal(t, 1, exportResult.Attempts)

	t.Log("Step 8: Verifying the sealed artifact round-trips...")
	sealed, err := os.ReadFile(exportResult.Location)
	require.NoError(t, err)

	opened, err := (&export.Sealer{Passphrase: "e2e-secret"}).Open(sealed)
	require.NoError(t, err)
	assert.Contains(t, string(opened), "# System Security Plan: Customer Portal")
	assert.Contains(t, string(opened), "Stateful inspection with a default-deny policy.")

	_, err = (&export.Sealer{Passphrase: "wrong"}).Open(sealed)
	assert.Error(t, err, "wrong passphrase must not open the artifact")
}

// TestInvalidTopologyNeverProducesArtifacts exercises the validation gate
func TestInvalidTopologyNeverProducesArtifacts(t *testing.T) {
	builder := document.NewBuilder()
	builder.Logger = logging.NewNopLogger()
	builder.Metrics = nil

	doc, err := builder.Build(context.Background(), &document.GenerateRequest{
		SystemName: "Broken",
		Baseline:   "moderate",
		Nodes: []diagram.Node{
			{ID: "a", Kind: diagram.KindDevice, Name: "A", ParentID: "a"},
		},
	})
	require.Error(t, err)
	assert.Nil(t, doc)

	var verr *document.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields())
}
