package diagram

// Graph is an immutable snapshot of a diagram: a flat node list plus edges,
// with an id index built once at construction. All resolver and analyzer
// functions take a *Graph and never mutate it, so a single snapshot is safe
// to share across goroutines.
type Graph struct {
	Nodes []Node
	Edges []Edge

	index map[string]*Node
}

// NewGraph builds a graph snapshot over the given nodes and edges.
// Duplicate ids keep the first occurrence in the index; DiagramErrors from
// the validation package report duplicates to callers that care.
func NewGraph(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		Nodes: nodes,
		Edges: edges,
		index: make(map[string]*Node, len(nodes)),
	}
	for i := range nodes {
		if _, exists := g.index[nodes[i].ID]; !exists {
			g.index[nodes[i].ID] = &nodes[i]
		}
	}
	return g
}

// Node returns the node with the given id, or nil when the id does not resolve
func (g *Graph) Node(id string) *Node {
	return g.index[id]
}

// Parent returns the one-hop parent of the node with the given id.
// Returns nil for a parentless node, an unknown id, or a dangling ParentID.
func (g *Graph) Parent(id string) *Node {
	node := g.index[id]
	if node == nil || node.ParentID == "" {
		return nil
	}
	return g.index[node.ParentID]
}

// Devices returns all device nodes in input order
func (g *Graph) Devices() []*Node {
	devices := make([]*Node, 0, len(g.Nodes))
	for i := range g.Nodes {
		if g.Nodes[i].IsDevice() {
			devices = append(devices, &g.Nodes[i])
		}
	}
	return devices
}

// Boundaries returns all boundary nodes in input order
func (g *Graph) Boundaries() []*Node {
	boundaries := make([]*Node, 0)
	for i := range g.Nodes {
		if g.Nodes[i].IsBoundary() {
			boundaries = append(boundaries, &g.Nodes[i])
		}
	}
	return boundaries
}

// ChildDevices returns the device nodes whose one-hop parent is the given
// boundary id, in input order. Zone membership is always one hop: a device
// nested two levels down belongs to its immediate parent, not the outermost
// boundary.
func (g *Graph) ChildDevices(boundaryID string) []*Node {
	children := make([]*Node, 0)
	for i := range g.Nodes {
		if g.Nodes[i].IsDevice() && g.Nodes[i].ParentID == boundaryID {
			children = append(children, &g.Nodes[i])
		}
	}
	return children
}
