package layout

import (
	"sort"

	"github.com/pangraph/layoutsgd/core"
)

// Order projects the computed position vector into a total node ordering:
// it groups nodes by weakly connected component, orders components
// ascending by average node ID, and within a component orders nodes by X
// ascending, breaking ties on handle integer. The same projection is
// applied to each snapshot.
//
// x must have one entry per node, indexed by node index (as produced by
// pgsgd.Run/RunDeterministic). snapshots may be nil.
func Order(graph core.PathHandleGraph, x []float64, snapshots [][]float64) (order []core.Handle, snapshotOrders [][]core.Handle, err error) {
	if graph.NodeCount() == 0 {
		return nil, nil, core.ErrEmptyGraph
	}

	componentRank, err := buildComponentRankMap(graph)
	if err != nil {
		return nil, nil, err
	}

	order, err = project(graph, x, componentRank)
	if err != nil {
		return nil, nil, err
	}

	if snapshots != nil {
		snapshotOrders = make([][]core.Handle, len(snapshots))
		for i, snap := range snapshots {
			snapshotOrders[i], err = project(graph, snap, componentRank)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	return order, snapshotOrders, nil
}

// OrderFromEngine is Order under the name path_linear_sgd_order gives the
// combined run-then-project step. It takes the x and snapshots an engine run
// returned and projects them; it does not run the engine itself.
func OrderFromEngine(graph core.PathHandleGraph, x []float64, snapshots [][]float64) ([]core.Handle, [][]core.Handle, error) {
	return Order(graph, x, snapshots)
}

// buildComponentRankMap partitions node IDs into weakly connected
// components, ranks the components ascending by average node ID, and
// returns a per-node-index rank lookup.
func buildComponentRankMap(graph core.PathHandleGraph) (map[uint64]int, error) {
	type wcc interface {
		WeaklyConnectedComponents() [][]uint64
	}

	g, ok := graph.(wcc)
	if !ok {
		return nil, errNoComponents
	}
	components := g.WeaklyConnectedComponents()

	type ranked struct {
		avgID float64
		index int
	}
	order := make([]ranked, len(components))
	for i, comp := range components {
		var sum uint64
		for _, id := range comp {
			sum += id
		}
		order[i] = ranked{avgID: float64(sum) / float64(len(comp)), index: i}
	}
	sort.Slice(order, func(a, b int) bool { return order[a].avgID < order[b].avgID })

	rankByIndex := make(map[int]int, len(order))
	for rank, o := range order {
		rankByIndex[o.index] = rank
	}

	nodeRank := make(map[uint64]int)
	for i, comp := range components {
		rank := rankByIndex[i]
		for _, id := range comp {
			nodeRank[id-1] = rank // id is 1-based (graph.ID); node index is 0-based
		}
	}

	return nodeRank, nil
}

type record struct {
	componentRank int
	pos           float64
	handle        core.Handle
}

func project(graph core.PathHandleGraph, x []float64, componentRank map[uint64]int) ([]core.Handle, error) {
	var records []record
	var iterErr error
	graph.ForEachHandle(func(h core.Handle) bool {
		idx := h.NodeIndex()
		if int(idx) >= len(x) {
			iterErr = errPositionOutOfRange
			return false
		}
		records = append(records, record{
			componentRank: componentRank[idx],
			pos:           x[idx],
			handle:        h,
		})
		return true
	})
	if iterErr != nil {
		return nil, iterErr
	}

	sort.Slice(records, func(a, b int) bool {
		ra, rb := records[a], records[b]
		if ra.componentRank != rb.componentRank {
			return ra.componentRank < rb.componentRank
		}
		if ra.pos != rb.pos {
			return ra.pos < rb.pos
		}
		return ra.handle.Int() < rb.handle.Int()
	})

	out := make([]core.Handle, len(records))
	for i, r := range records {
		out[i] = r.handle
	}
	return out, nil
}
