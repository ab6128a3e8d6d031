package core

// AddNode appends a new node of the given nucleotide length and returns its
// forward Handle. Node indices are assigned densely and monotonically, so the
// returned handle's NodeIndex() is always the previous NodeCount().
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(length uint64) (Handle, error) {
	if length == 0 {
		return 0, ErrZeroLength
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	idx := uint64(len(g.nodes))
	g.nodes = append(g.nodes, node{length: length})
	return PackHandle(idx, false), nil
}

// AddEdge records an oriented edge from one side of a node to one side of
// another. Edges are directional in storage (from -> to) but the graph is
// bidirected: traversing into a node's reverse side and out its forward side
// is a different walk than the reverse. AddEdge does not mirror the edge in
// the opposite direction; callers that want a symmetric traversal add both
// orientations explicitly, mirroring how bidirected toolkits represent a
// single biological edge as two directed arcs between oriented sides.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to Handle) error {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n := uint64(len(g.nodes))
	if from.NodeIndex() >= n || to.NodeIndex() >= n {
		return ErrNodeNotFound
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	side := 0
	if from.IsReverse() {
		side = 1
	}
	g.nodes[from.NodeIndex()].out[side] = append(g.nodes[from.NodeIndex()].out[side], to)

	return nil
}
