package itree

import (
	"fmt"
	"sort"
)

// Interval is a half-open range [Start, End) carrying a caller-defined
// satellite value.
type Interval struct {
	Start uint64
	End   uint64
	Data  uint64
}

// Tree is a static, sorted collection of non-overlapping intervals.
// The zero value is not usable; construct with New.
type Tree struct {
	intervals []Interval
}

// New builds a Tree from a set of intervals. Intervals must not overlap;
// New does not sort or validate pairwise relationships beyond what Overlap
// needs (a single sort by Start), since the only caller (xp.Build) is
// trusted to hand in the disjoint path ranges it just computed.
//
// Complexity: O(k log k) where k = len(intervals).
func New(intervals []Interval) *Tree {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return &Tree{intervals: sorted}
}

// ErrNoOverlap is returned by Overlap when no interval contains the queried
// position. The original engine treats this as fatal index corruption and
// aborts; pgsgd's sampler does the same via panic, wrapping this error.
type ErrNoOverlap struct {
	Pos uint64
}

func (e *ErrNoOverlap) Error() string {
	return fmt.Sprintf("itree: no overlapping interval at position %d", e.Pos)
}

// Overlap returns the interval containing pos, or ErrNoOverlap if pos falls
// in a gap or outside the covered range.
//
// Complexity: O(log k).
func (t *Tree) Overlap(pos uint64) (Interval, error) {
	// Find the last interval whose Start <= pos.
	i := sort.Search(len(t.intervals), func(i int) bool {
		return t.intervals[i].Start > pos
	}) - 1

	if i < 0 || pos >= t.intervals[i].End {
		return Interval{}, &ErrNoOverlap{Pos: pos}
	}
	return t.intervals[i], nil
}

// Len returns the number of intervals in the tree.
func (t *Tree) Len() int {
	return len(t.intervals)
}
