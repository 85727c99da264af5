package diagram

// Resolver functions walk ParentID chains over a graph snapshot.
//
// Memo maps are always caller-scoped: the caller allocates one, passes it to
// repeated calls over the same snapshot, and throws it away afterwards. There
// is no process-wide cache, so concurrent resolutions over different graphs
// cannot interfere.

// NestingDepth returns how many resolvable ancestors sit above the node.
// A parentless node, an unknown id, or a dangling ParentID all yield 0.
// Pass a non-nil memo to amortize repeated lookups over one snapshot.
func (g *Graph) NestingDepth(id string, memo map[string]int) int {
	return g.nestingDepth(id, memo, make(map[string]bool))
}

func (g *Graph) nestingDepth(id string, memo map[string]int, seen map[string]bool) int {
	if memo != nil {
		if depth, ok := memo[id]; ok {
			return depth
		}
	}
	if seen[id] {
		// Pre-existing cycle in imported data; treat as a chain root
		return cacheDepth(memo, id, 0)
	}
	seen[id] = true

	node := g.index[id]
	if node == nil || node.ParentID == "" {
		return cacheDepth(memo, id, 0)
	}
	if g.index[node.ParentID] == nil {
		// Dangling parent reference degrades to depth 0
		return cacheDepth(memo, id, 0)
	}

	depth := g.nestingDepth(node.ParentID, memo, seen) + 1
	return cacheDepth(memo, id, depth)
}

func cacheDepth(memo map[string]int, id string, depth int) int {
	if memo != nil {
		memo[id] = depth
	}
	return depth
}

// IsDescendant reports whether id sits at or below ancestorID in the parent
// chain. A node is its own descendant. This is the cycle guard for reparent
// operations: moving node A under node B is illegal when B is a descendant
// of A.
func (g *Graph) IsDescendant(id, ancestorID string) bool {
	if id == ancestorID {
		return true
	}

	seen := make(map[string]bool)
	current := g.index[id]
	for current != nil && current.ParentID != "" {
		if current.ParentID == ancestorID {
			return true
		}
		if seen[current.ParentID] {
			return false
		}
		seen[current.ParentID] = true
		current = g.index[current.ParentID]
	}
	return false
}

// CanReparent reports whether moving the node under newParentID would keep
// the parent relation acyclic. Reparenting to the empty id (top level) is
// always legal.
func (g *Graph) CanReparent(id, newParentID string) bool {
	if newParentID == "" {
		return true
	}
	return !g.IsDescendant(newParentID, id)
}

// AbsolutePosition returns the node's offset summed with its full parent
// chain's offsets. Unknown ids and dangling parent references contribute a
// zero offset. Pass a non-nil memo to amortize repeated lookups.
func (g *Graph) AbsolutePosition(id string, memo map[string]Point) Point {
	return g.absolutePosition(id, memo, make(map[string]bool))
}

func (g *Graph) absolutePosition(id string, memo map[string]Point, seen map[string]bool) Point {
	if memo != nil {
		if pos, ok := memo[id]; ok {
			return pos
		}
	}

	node := g.index[id]
	if node == nil || seen[id] {
		return Point{}
	}
	seen[id] = true

	pos := node.Position
	if node.ParentID != "" && g.index[node.ParentID] != nil {
		pos = pos.Add(g.absolutePosition(node.ParentID, memo, seen))
	}

	if memo != nil {
		memo[id] = pos
	}
	return pos
}
