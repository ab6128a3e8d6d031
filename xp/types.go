package xp

import (
	"errors"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/itree"
)

// PathID identifies a path by its 0-based position in the slice passed to
// Build.
type PathID int

// Step is an occurrence of a handle within a path: a path identity and a
// 0-based rank within that path's step sequence. Note that the flattened
// node-path incidence tables (NRIV) store ranks 1-based; Step's Rank field
// is always 0-based, matching ordinary Go slice indexing, and callers
// convert at the boundary (see NRIV's doc comment).
type Step struct {
	Path PathID
	Rank int
}

// PathDef is the input to Build: a path's ordered sequence of handles. The
// nucleotide length of the path is the sum of the lengths of its handles'
// underlying nodes, read from graph.
type PathDef struct {
	Steps []core.Handle
}

// Sentinel errors returned by Build and the read accessors.
var (
	// ErrEmptyPath indicates a PathDef with zero steps was supplied; a path
	// must cover at least one step to have a meaningful length.
	ErrEmptyPath = errors.New("xp: path has no steps")

	// ErrPathNotFound indicates an accessor was called with a PathID outside
	// the range built by Build.
	ErrPathNotFound = errors.New("xp: path id out of range")

	// ErrOffsetOutOfRange indicates StepAtOffset was called with an offset
	// at or beyond the path's length.
	ErrOffsetOutOfRange = errors.New("xp: offset beyond path length")
)

// PathIndex is the read-only structure the pgsgd engine samples against.
// It is built once by Build and never mutated afterward, so concurrent reads
// from multiple sampler goroutines need no synchronization.
type PathIndex struct {
	pathLen []uint64       // pathLen[p]: nucleotide length of path p
	handles [][]core.Handle // handles[p][r]: handle of step r in path p
	starts  [][]uint64     // starts[p][r]: path-local start offset of step r

	// Flattened node–path incidence, one entry per (boundary marker or
	// occurrence), laid out node-by-node: node k's block is a boundary
	// entry (npBV[i] == true) followed by one entry per path occurrence
	// of node k (npBV[i] == false).
	npBV   []bool   // np_bv
	npiIV  []PathID // npi_iv: path id at each entry (meaningless at boundaries)
	nrIV   []int    // nr_iv: 1-based step rank at each entry (meaningless at boundaries)
	select_ []int   // select_[k-1]: index of 1-based node k's boundary entry; len N, no trailing sentinel

	tree     *itree.Tree
	totalLen uint64
	numNodes int
}

// TotalPathLength returns L = sum over every indexed path of its nucleotide
// length, the support of mode P's uniform draw.
func (idx *PathIndex) TotalPathLength() uint64 {
	return idx.totalLen
}

// PathCount returns the number of paths indexed.
func (idx *PathIndex) PathCount() int {
	return len(idx.pathLen)
}

// PathLength returns len(p) - the nucleotide length of path p.
func (idx *PathIndex) PathLength(p PathID) (uint64, error) {
	if int(p) < 0 || int(p) >= len(idx.pathLen) {
		return 0, ErrPathNotFound
	}
	return idx.pathLen[p], nil
}

// Tree exposes the pangenome-offset interval tree built over the indexed
// paths' ranges, for mode P sampling.
func (idx *PathIndex) Tree() *itree.Tree {
	return idx.tree
}

// NPBV returns np_bv, the flattened node-boundary bit vector.
func (idx *PathIndex) NPBV() []bool {
	return idx.npBV
}

// NPIIV returns npi_iv, the path identifier recorded at each np_bv entry.
func (idx *PathIndex) NPIIV() []PathID {
	return idx.npiIV
}

// NRIV returns nr_iv, the 1-based step rank recorded at each np_bv entry.
func (idx *PathIndex) NRIV() []int {
	return idx.nrIV
}

// NPBVSelect returns the index in the flattened incidence list at which the
// k-th node's (1-based, k in [1, N]) boundary entry begins. The "next node
// after the last" case, where the draw lands on node N itself, is not
// representable as a select query and is handled by the caller directly
// against len(np_bv); see pgsgd/sampler.go.
func (idx *PathIndex) NPBVSelect(k int) (int, error) {
	if k < 1 || k > len(idx.select_) {
		return 0, errors.New("xp: select index out of range")
	}
	return idx.select_[k-1], nil
}

// NodeCount returns N, the number of distinct nodes represented in the
// flattened incidence tables (np_bv/npi_iv/nr_iv), i.e. the graph's node
// count as observed at Build time.
func (idx *PathIndex) NodeCount() int {
	return idx.numNodes
}
