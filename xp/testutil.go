package xp

import "github.com/pangraph/layoutsgd/itree"

// CorruptTreeForTest replaces idx's interval tree, bypassing the invariant
// Build maintains that the tree exactly covers the concatenation of its
// paths' lengths. Build itself can never produce a gapped tree, so this
// exists only for tests elsewhere in the module that need to exercise how a
// path index consumer reacts to one (see pgsgd/sampler_test.go).
func (idx *PathIndex) CorruptTreeForTest(tree *itree.Tree) {
	idx.tree = tree
}
