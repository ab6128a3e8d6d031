// Package core defines the bidirected sequence graph that path_sgd lays out:
// Handle, Graph, and the thread-safe primitives for building and traversing it.
//
// A Graph here is not the general string-keyed Vertex/Edge graph of a typical
// graph library. Nodes are dense integer indices in [0, N), each carrying a
// nucleotide Length; a Handle packs a node index together with an orientation
// bit, following the usual bidirected-graph convention where every node has a
// forward and a reverse side. Edges connect oriented sides of nodes, not bare
// node identities.
//
// Graph implements PathHandleGraph, the read-only traversal surface that the
// pgsgd engine consumes: node count, per-handle length and orientation, and a
// compact forward iteration order. Mutation (AddNode, AddEdge) is guarded by
// separate RWMutexes for the node catalog and the edge/adjacency catalog, the
// same split-lock discipline used throughout this package to keep
// read-heavy traversal from contending with the rarer write path.
package core
