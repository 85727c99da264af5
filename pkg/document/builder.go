package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-compliance/pkg/catalog"
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
	"github.com/dd0wney/cluso-compliance/pkg/inventory"
	"github.com/dd0wney/cluso-compliance/pkg/logging"
	"github.com/dd0wney/cluso-compliance/pkg/metrics"
	"github.com/dd0wney/cluso-compliance/pkg/narrative"
	"github.com/dd0wney/cluso-compliance/pkg/topology"
)

// Builder assembles SSP documents from a topology and a control catalog.
// Zero-value collaborators get sensible defaults in Build.
type Builder struct {
	Controls  catalog.Provider
	Inventory inventory.Extractor
	Enhancer  narrative.Provider
	Logger    logging.Logger
	Metrics   *metrics.Registry

	// Now is injectable for deterministic timestamps in tests
	Now func() time.Time
}

// NewBuilder returns a builder with the builtin catalog and defaults
func NewBuilder() *Builder {
	return &Builder{
		Controls:  catalog.Builtin(),
		Inventory: &inventory.BasicExtractor{},
		Logger:    logging.NewDefaultLogger(),
		Metrics:   metrics.Default(),
	}
}

// Build runs the full pipeline: validate, analyze topology, select controls,
// resolve narratives, extract inventory, assemble. An invalid request
// returns a *ValidationError carrying every field error and no document.
func (b *Builder) Build(ctx context.Context, req *GenerateRequest) (*SSPDocument, error) {
	start := time.Now()
	logger := b.logger()

	if result := req.validate(); !result.Valid() {
		logger.Warn("request rejected",
			logging.Component("document"),
			logging.Int("field_errors", len(result.Errors)))
		b.record("invalid", start)
		return nil, &ValidationError{Result: result}
	}

	g := diagram.NewGraph(req.Nodes, req.Edges)
	summary := topology.Analyze(g)

	refs := deviceRefIndex(g)
	controls := b.selectControls(req)

	resolver := &narrative.Resolver{
		Policy:           req.policy(),
		Enhancer:         b.Enhancer,
		SortContributors: req.SortContributors,
	}

	resolved := make([]ResolvedControl, 0, len(controls))
	for _, entry := range controls {
		if err := ctx.Err(); err != nil {
			b.record("cancelled", start)
			return nil, err
		}

		custom := customFor(req.CustomNarratives, entry.ID)
		nar, include := resolver.Resolve(ctx, entry, custom, g, summary)
		if !include {
			continue
		}
		if b.Metrics != nil {
			b.Metrics.RecordNarrativeSource(string(nar.Source))
		}

		resolved = append(resolved, ResolvedControl{
			ControlID:            entry.ID,
			Family:               entry.Family,
			FamilyName:           catalog.FamilyName(entry.Family),
			Title:                entry.Title,
			Narrative:            nar.Text,
			Source:               nar.Source,
			ImplementationStatus: nar.ImplementationStatus,
			Devices:              resolveRefs(refs, nar.DeviceIDs),
			Boundaries:           resolveRefs(refs, nar.BoundaryIDs),
		})
	}

	snapshot := b.extractor().Extract(g)

	doc := &SSPDocument{
		Metadata: Metadata{
			DocumentID:   uuid.NewString(),
			SystemName:   req.SystemName,
			Organization: req.Organization,
			Baseline:     req.Baseline,
			GeneratedAt:  b.now(),
			Version:      "1.0",
		},
		Summary:   summary,
		Inventory: snapshot,
		Controls:  resolved,
	}

	logger.Info("document built",
		logging.Component("document"),
		logging.DocumentID(doc.Metadata.DocumentID),
		logging.Int("controls", len(resolved)),
		logging.Int("devices", len(summary.Devices)),
		logging.Duration("elapsed", time.Since(start)))
	b.record("success", start)
	return doc, nil
}

// selectControls filters the catalog by baseline, then by the optional
// explicit subset, preserving catalog order throughout
func (b *Builder) selectControls(req *GenerateRequest) []catalog.Entry {
	provider := b.Controls
	if provider == nil {
		provider = catalog.Builtin()
	}

	entries := provider.Controls(catalog.Baseline(req.Baseline))
	if len(req.ControlIDs) == 0 {
		return entries
	}

	wanted := make(map[string]bool, len(req.ControlIDs))
	for _, id := range req.ControlIDs {
		wanted[catalog.NormalizeControlID(id)] = true
	}

	subset := make([]catalog.Entry, 0, len(req.ControlIDs))
	for _, entry := range entries {
		if wanted[entry.ID] {
			subset = append(subset, entry)
		}
	}
	return subset
}

// customFor tolerates un-normalized map keys the same way device notes do
func customFor(customs map[string]narrative.Custom, controlID string) *narrative.Custom {
	if len(customs) == 0 {
		return nil
	}
	if custom, ok := customs[controlID]; ok {
		return &custom
	}
	for key, custom := range customs {
		if catalog.NormalizeControlID(key) == controlID {
			return &custom
		}
	}
	return nil
}

// deviceRefIndex builds the node-id lookup once; narrative device and
// boundary references resolve against it, with unknown ids dropped
func deviceRefIndex(g *diagram.Graph) map[string]DeviceRef {
	refs := make(map[string]DeviceRef, len(g.Nodes))
	for i := range g.Nodes {
		node := &g.Nodes[i]
		refs[node.ID] = DeviceRef{ID: node.ID, Name: node.Name, Type: node.Type}
	}
	return refs
}

func resolveRefs(refs map[string]DeviceRef, ids []string) []DeviceRef {
	if len(ids) == 0 {
		return nil
	}
	out := make([]DeviceRef, 0, len(ids))
	for _, id := range ids {
		if ref, ok := refs[id]; ok {
			out = append(out, ref)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (b *Builder) logger() logging.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return logging.NewNopLogger()
}

func (b *Builder) extractor() inventory.Extractor {
	if b.Inventory != nil {
		return b.Inventory
	}
	return &inventory.BasicExtractor{}
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now().UTC()
}

func (b *Builder) record(status string, start time.Time) {
	if b.Metrics != nil {
		b.Metrics.RecordDocumentBuild(status, time.Since(start))
	}
}
