package pgsgd

import (
	"math"
	"math/rand"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/xp"
)

// sampler draws one term pair (i, j, d_ij) per call, against a private
// PRNG; samplers are never shared across goroutines.
type sampler struct {
	graph    core.PathHandleGraph
	idx      *xp.PathIndex
	mode     SampleMode
	included []bool // included[p]: whether path p is in the caller's use_paths subset; consulted only in mode P
	zipf     *zipfSampler
	rng      *rand.Rand
}

func newSampler(graph core.PathHandleGraph, idx *xp.PathIndex, mode SampleMode, theta float64, space int, included []bool, rng *rand.Rand) *sampler {
	return &sampler{
		graph:    graph,
		idx:      idx,
		mode:     mode,
		included: included,
		zipf:     newZipfSampler(space, theta),
		rng:      rng,
	}
}

// sample makes exactly one sampling attempt and returns ok=false for a
// rejected draw; rejected samples must not count toward term_updates.
// sample never retries internally: callers decide what a rejection means
// for their loop structure. A worker goroutine re-checks work_todo before
// trying again, while the deterministic variant's fixed-width inner loop
// simply lets a rejected attempt consume one of its min_term_updates slots
// without applying an update.
//
// An invalid sample, where the interval tree reports a gap at the drawn
// pangenome offset, is not a rejection: it indicates path-index corruption
// and panics with *IndexCorruptionError.
func (s *sampler) sample() (i, j uint64, dij float64, ok bool) {
	p, a, ok := s.drawPathOffset()
	if !ok {
		return 0, 0, 0, false
	}

	pathLen, err := s.idx.PathLength(p)
	if err != nil {
		panic(&IndexCorruptionError{Err: err})
	}
	pl := pathLen - 1

	z := s.zipf.next(s.rng)
	b, ok := s.drawB(a, pl, z)
	if !ok {
		return 0, 0, 0, false
	}

	stepA, err := s.idx.StepAtOffset(p, a)
	if err != nil {
		panic(&IndexCorruptionError{Pos: a, Err: err})
	}
	stepB, err := s.idx.StepAtOffset(p, b)
	if err != nil {
		panic(&IndexCorruptionError{Pos: b, Err: err})
	}

	hI, err := s.idx.Handle(stepA)
	if err != nil {
		panic(&IndexCorruptionError{Err: err})
	}
	hJ, err := s.idx.Handle(stepB)
	if err != nil {
		panic(&IndexCorruptionError{Err: err})
	}

	offA, _ := s.idx.StepOffset(stepA)
	offB, _ := s.idx.StepOffset(stepB)
	offA = adjustForOrientation(s.graph, hI, offA)
	offB = adjustForOrientation(s.graph, hJ, offB)

	d := math.Abs(float64(offA) - float64(offB))
	if d == 0 {
		return 0, 0, 0, false
	}

	return hI.NodeIndex(), hJ.NodeIndex(), d, true
}

// drawPathOffset draws (path, path-local offset) under the sampler's mode.
// ok is false for a rejected draw: a node-boundary hit in mode B, a node
// with zero path occurrences in mode N, or (mode P only) a draw that lands
// on a path outside s.included.
//
// Only mode P consults s.included. The original engine restricts mode P's
// sampling universe to use_paths at interval-tree construction time, before
// any offset is ever drawn; this module's tree is always built over every
// indexed path (xp.Build has no use_paths parameter), so mode P recovers
// the same restriction via rejection sampling instead. Modes B and N read
// np_bv/npi_iv/nr_iv unconditionally over every indexed path in the
// original, with no use_paths filtering at all, and do the same here.
func (s *sampler) drawPathOffset() (p xp.PathID, a uint64, ok bool) {
	switch s.mode {
	case ModeP:
		total := s.idx.TotalPathLength()
		u := uint64(s.rng.Int63n(int64(total)))
		iv, err := s.idx.Tree().Overlap(u)
		if err != nil {
			panic(&IndexCorruptionError{Pos: u, Err: err})
		}
		path := xp.PathID(iv.Data)
		if !s.included[path] {
			return 0, 0, false
		}
		return path, u - iv.Start, true

	case ModeN:
		n := s.idx.NodeCount()
		u := 1 + s.rng.Intn(n)
		base, err := s.idx.NPBVSelect(u)
		if err != nil {
			panic(&IndexCorruptionError{Err: err})
		}
		var next int
		if u == n {
			next = len(s.idx.NPBV())
		} else {
			next, err = s.idx.NPBVSelect(u + 1)
			if err != nil {
				panic(&IndexCorruptionError{Err: err})
			}
		}
		hits := next - base - 1
		if hits <= 0 {
			return 0, 0, false
		}
		k := 1 + s.rng.Intn(hits)
		q := base + k
		path := s.idx.NPIIV()[q]
		rank := s.idx.NRIV()[q] - 1
		off, err := s.idx.StepOffset(xp.Step{Path: path, Rank: rank})
		if err != nil {
			panic(&IndexCorruptionError{Err: err})
		}
		return path, off, true

	default: // ModeB
		npbv := s.idx.NPBV()
		u := s.rng.Intn(len(npbv))
		if npbv[u] {
			return 0, 0, false
		}
		path := s.idx.NPIIV()[u]
		rank := s.idx.NRIV()[u] - 1
		off, err := s.idx.StepOffset(xp.Step{Path: path, Rank: rank})
		if err != nil {
			panic(&IndexCorruptionError{Err: err})
		}
		return path, off, true
	}
}

// adjustForOrientation re-bases a step's start offset to account for the
// relative orientation of the handle occupying it: a reverse handle's step
// is adjusted by adding the handle's nucleotide length, since the step's
// recorded start is always in the path's forward traversal direction
// regardless of which side of the node was stepped onto.
func adjustForOrientation(graph core.PathHandleGraph, h core.Handle, offset uint64) uint64 {
	if graph.IsReverse(h) {
		return offset + graph.Length(h)
	}
	return offset
}

// drawB derives offset b from offset a, path-length-minus-one pl, and a
// Zipfian draw z, by flipping a coin for which side of a to step toward.
// ok is false for a rejected draw (z overshoots a zero-length span on the
// chosen side).
func (s *sampler) drawB(a, pl, z uint64) (b uint64, ok bool) {
	if s.rng.Intn(2) == 0 {
		if z > a {
			if a == 0 {
				return 0, false
			}
			z %= a
		}
		return a - z, true
	}
	span := pl - a
	if z > span {
		if span == 0 {
			return 0, false
		}
		z %= span
	}
	return a + z, true
}
