package core

// WeaklyConnectedComponents partitions node identifiers (1-based, per ID())
// into maximal sets reachable from one another when edge orientation is
// ignored. The traversal treats every recorded edge as undirected for this
// purpose, matching the graph-theoretic definition of "weakly connected"
// for a directed/bidirected graph.
//
// Components are returned in arbitrary order; within a component, node IDs
// are returned in the order they were first visited. Callers that need a
// canonical ordering (the layout projector does) sort components themselves.
//
// Complexity: O(N + E).
func (g *Graph) WeaklyConnectedComponents() [][]uint64 {
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	// Build an undirected adjacency view once, up front, so the BFS below
	// never has to care about orientation: the same island-finding sweep
	// gridgraph.ConnectedComponents runs over a cell grid, run here over
	// node indices instead of (x,y) cells.
	undirected := make([][]uint64, n)
	g.ForEachHandle(func(h Handle) bool {
		u := h.NodeIndex()
		for _, v := range g.Neighbors(h) {
			w := v.NodeIndex()
			undirected[u] = append(undirected[u], w)
			undirected[w] = append(undirected[w], u)
		}
		for _, v := range g.Neighbors(h.Flip()) {
			w := v.NodeIndex()
			undirected[u] = append(undirected[u], w)
			undirected[w] = append(undirected[w], u)
		}
		return true
	})

	seen := make([]bool, n)
	var comps [][]uint64

	for start := uint64(0); start < n; start++ {
		if seen[start] {
			continue
		}
		queue := []uint64{start}
		seen[start] = true
		var comp []uint64

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u+1) // expose 1-based node IDs
			for _, v := range undirected[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
