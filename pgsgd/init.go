package pgsgd

import (
	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/xp"
)

// initPositions seeds X so that nodes start laid out end-to-end in the
// graph's native traversal order: for any two consecutive handles h, h' in
// that order, X[node_index(h')] - X[node_index(h)] == length(h).
func initPositions(graph core.PathHandleGraph, positions Positions) {
	var length uint64
	graph.ForEachHandle(func(h core.Handle) bool {
		positions[h.NodeIndex()].Store(float64(length))
		length += graph.Length(h)
		return true
	})
}

// validateUsePaths requires usePaths to be a non-empty set of distinct path
// IDs, each within the range the index was built with. usePaths need not
// enumerate every indexed path: buildPathFilter turns a validated usePaths
// into the per-path inclusion mask mode P's draw restricts itself to (see
// drawPathOffset), so a caller that passes a proper subset genuinely
// restricts mode P's sampling to it.
func validateUsePaths(idx *xp.PathIndex, usePaths []xp.PathID) error {
	if len(usePaths) == 0 {
		return ErrUsePaths
	}
	seen := make(map[xp.PathID]bool, len(usePaths))
	for _, p := range usePaths {
		if int(p) < 0 || int(p) >= idx.PathCount() {
			return ErrUsePaths
		}
		if seen[p] {
			return ErrUsePaths
		}
		seen[p] = true
	}
	return nil
}

// buildPathFilter turns a validated usePaths into a per-PathID inclusion
// mask: included[p] is true iff p was named in usePaths. Only mode P
// consults this mask (see drawPathOffset); modes B and N read the index
// unconditionally over every indexed path regardless of usePaths.
func buildPathFilter(idx *xp.PathIndex, usePaths []xp.PathID) []bool {
	included := make([]bool, idx.PathCount())
	for _, p := range usePaths {
		included[p] = true
	}
	return included
}
