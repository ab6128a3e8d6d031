package core

// PathHandleGraph is the read-only traversal surface the pgsgd engine
// consumes. It never mutates the graph and never outlives a single layout
// run's Graph; a *Graph satisfies it directly.
type PathHandleGraph interface {
	// NodeCount returns N, the number of nodes. N never changes once an
	// engine run has started.
	NodeCount() uint64

	// ForEachHandle visits every node's forward handle exactly once, in the
	// graph's native (insertion) order. Iteration stops early if fn returns
	// false.
	ForEachHandle(fn func(Handle) bool)

	// Length returns the nucleotide length of the node underlying h,
	// independent of h's orientation.
	Length(h Handle) uint64

	// IsReverse reports h's orientation bit.
	IsReverse(h Handle) bool

	// ID returns the 1-based node identifier used by the ordering
	// projector's average-id component ranking. For a Graph, ID is
	// NodeIndex()+1.
	ID(h Handle) uint64

	// Neighbors returns the handles reachable by leaving h's side.
	Neighbors(h Handle) []Handle
}

var _ PathHandleGraph = (*Graph)(nil)

// NodeCount returns the number of nodes currently in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() uint64 {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return uint64(len(g.nodes))
}

// ForEachHandle visits each node's forward handle once, in insertion order.
// Complexity: O(N).
func (g *Graph) ForEachHandle(fn func(Handle) bool) {
	g.muNodes.RLock()
	n := uint64(len(g.nodes))
	g.muNodes.RUnlock()

	for i := uint64(0); i < n; i++ {
		if !fn(PackHandle(i, false)) {
			return
		}
	}
}

// Length returns the nucleotide length of the node underlying h.
// Complexity: O(1).
func (g *Graph) Length(h Handle) uint64 {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return g.nodes[h.NodeIndex()].length
}

// IsReverse reports h's orientation bit.
// Complexity: O(1).
func (g *Graph) IsReverse(h Handle) bool {
	return h.IsReverse()
}

// ID returns the 1-based node identifier of h's underlying node.
// Complexity: O(1).
func (g *Graph) ID(h Handle) uint64 {
	return h.NodeIndex() + 1
}

// Neighbors returns the handles reachable by leaving h's oriented side.
// The returned slice is owned by the caller; it is a fresh copy.
// Complexity: O(deg(h)).
func (g *Graph) Neighbors(h Handle) []Handle {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	side := 0
	if h.IsReverse() {
		side = 1
	}
	out := g.nodes[h.NodeIndex()].out[side]
	cp := make([]Handle, len(out))
	copy(cp, out)
	return cp
}
