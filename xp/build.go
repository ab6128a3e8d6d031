package xp

import (
	"sort"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/itree"
)

// Build constructs a PathIndex from an explicit, in-memory list of path step
// sequences, reading node lengths from graph. This is the only construction
// path this module provides (see doc.go): turning a full pangenome (FASTA,
// GFA, an on-disk succinct encoding) into a []PathDef is out of scope.
//
// Paths are assigned PathIDs 0..len(paths)-1 in the order given. The
// pangenome offset space used by the interval tree and by mode P sampling is
// the concatenation of paths in that same order.
//
// Complexity: O(sum of path lengths in steps + N), where N is graph.NodeCount().
func Build(graph core.PathHandleGraph, paths []PathDef) (*PathIndex, error) {
	idx := &PathIndex{
		pathLen: make([]uint64, len(paths)),
		handles: make([][]core.Handle, len(paths)),
		starts:  make([][]uint64, len(paths)),
	}

	n := int(graph.NodeCount())
	idx.numNodes = n
	occurrences := make([][]Step, n)

	var cumulative uint64
	intervals := make([]itree.Interval, 0, len(paths))

	for p, def := range paths {
		if len(def.Steps) == 0 {
			return nil, ErrEmptyPath
		}

		starts := make([]uint64, len(def.Steps))
		handles := make([]core.Handle, len(def.Steps))
		var offset uint64
		for r, h := range def.Steps {
			starts[r] = offset
			handles[r] = h
			offset += graph.Length(h)

			nodeIdx := int(h.NodeIndex())
			occurrences[nodeIdx] = append(occurrences[nodeIdx], Step{Path: PathID(p), Rank: r})
		}

		idx.starts[p] = starts
		idx.handles[p] = handles
		idx.pathLen[p] = offset

		intervals = append(intervals, itree.Interval{
			Start: cumulative,
			End:   cumulative + offset,
			Data:  uint64(p),
		})
		cumulative += offset
	}

	idx.totalLen = cumulative
	idx.tree = itree.New(intervals)

	// Flatten the per-node occurrence lists into np_bv/npi_iv/nr_iv, one
	// boundary entry followed by one entry per occurrence, per node, in
	// node-index order.
	total := n
	for _, occ := range occurrences {
		total += len(occ)
	}
	idx.npBV = make([]bool, 0, total)
	idx.npiIV = make([]PathID, 0, total)
	idx.nrIV = make([]int, 0, total)
	idx.select_ = make([]int, n)

	for k := 0; k < n; k++ {
		idx.select_[k] = len(idx.npBV)
		idx.npBV = append(idx.npBV, true)
		idx.npiIV = append(idx.npiIV, 0)
		idx.nrIV = append(idx.nrIV, 0)

		for _, occ := range occurrences[k] {
			idx.npBV = append(idx.npBV, false)
			idx.npiIV = append(idx.npiIV, occ.Path)
			idx.nrIV = append(idx.nrIV, occ.Rank+1)
		}
	}

	return idx, nil
}

// StepAtOffset returns the step of path p containing path-local offset
// offset, i.e. the step r such that starts[p][r] <= offset <
// starts[p][r]+length(handle r).
//
// Complexity: O(log steps(p)).
func (idx *PathIndex) StepAtOffset(p PathID, offset uint64) (Step, error) {
	if int(p) < 0 || int(p) >= len(idx.starts) {
		return Step{}, ErrPathNotFound
	}
	if offset >= idx.pathLen[p] {
		return Step{}, ErrOffsetOutOfRange
	}

	starts := idx.starts[p]
	r := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if r < 0 {
		r = 0
	}
	return Step{Path: p, Rank: r}, nil
}

// Handle returns the handle occurring at step s.
func (idx *PathIndex) Handle(s Step) (core.Handle, error) {
	if int(s.Path) < 0 || int(s.Path) >= len(idx.handles) {
		return 0, ErrPathNotFound
	}
	handles := idx.handles[s.Path]
	if s.Rank < 0 || s.Rank >= len(handles) {
		return 0, ErrOffsetOutOfRange
	}
	return handles[s.Rank], nil
}

// StepOffset returns the path-local start offset of step s.
func (idx *PathIndex) StepOffset(s Step) (uint64, error) {
	if int(s.Path) < 0 || int(s.Path) >= len(idx.starts) {
		return 0, ErrPathNotFound
	}
	starts := idx.starts[s.Path]
	if s.Rank < 0 || s.Rank >= len(starts) {
		return 0, ErrOffsetOutOfRange
	}
	return starts[s.Rank], nil
}
