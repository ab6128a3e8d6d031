// Package itree implements the static, once-built interval index that the
// path sampler uses to resolve a pangenome offset to the path it falls
// within.
//
// Intervals are supplied once at construction and never change afterward,
// and the sampler's use case only ever needs point-containment queries
// against half-open ranges, so Tree stores intervals sorted by start offset
// and resolves a query with binary search rather than a general augmented
// interval tree. Intervals are not required to be contiguous or to cover the
// full offset space: a gap between intervals is a valid (if pathological)
// input, and a query landing in one is reported rather than silently
// misrouted to a neighboring interval.
package itree
