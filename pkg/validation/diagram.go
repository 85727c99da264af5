package validation

import (
	"github.com/dd0wney/cluso-compliance/pkg/diagram"
)

// Diagram checks the structural invariants of a diagram snapshot: node ids
// unique and non-empty, parent references acyclic, edge endpoints resolving
// to known nodes. Every violation is reported; nothing stops at the first.
func Diagram(nodes []diagram.Node, edges []diagram.Edge) *Result {
	result := &Result{}

	seen := make(map[string]bool, len(nodes))
	for i, node := range nodes {
		if node.ID == "" {
			result.Add("nodes", "node at index %d has an empty id", i)
			continue
		}
		if seen[node.ID] {
			result.Add("nodes", "duplicate node id %q", node.ID)
		}
		seen[node.ID] = true
		if node.Kind != diagram.KindDevice && node.Kind != diagram.KindBoundary {
			result.Add("nodes", "node %q has unknown kind %q", node.ID, node.Kind)
		}
	}

	g := diagram.NewGraph(nodes, edges)
	for _, node := range nodes {
		if node.ParentID == "" {
			continue
		}
		if node.ParentID == node.ID {
			result.Add("nodes", "node %q is its own parent", node.ID)
			continue
		}
		// A parent chain that loops back onto the node is a cycle; a
		// dangling ParentID is legal and degrades to "no parent"
		if g.Node(node.ParentID) != nil && g.IsDescendant(node.ParentID, node.ID) {
			result.Add("nodes", "node %q participates in a parent cycle", node.ID)
		}
	}

	for i, edge := range edges {
		if edge.SourceID == "" || edge.TargetID == "" {
			result.Add("edges", "edge at index %d is missing an endpoint", i)
			continue
		}
		if g.Node(edge.SourceID) == nil {
			result.Add("edges", "edge at index %d references unknown source %q", i, edge.SourceID)
		}
		if g.Node(edge.TargetID) == nil {
			result.Add("edges", "edge at index %d references unknown target %q", i, edge.TargetID)
		}
	}

	return result
}
