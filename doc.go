// Package layoutsgd computes a one-dimensional layout of the nodes of a
// bidirected sequence graph whose paths cover the node set, via path-guided
// stochastic gradient descent (PG-SGD).
//
// Given a graph (core) and a read-only path index over it (xp), pgsgd.Run
// (or pgsgd.RunDeterministic) assigns every node a real-valued position so
// that, averaged over sampled pairs of positions co-occurring on a path,
// their Euclidean distance in the layout approximates their distance along
// the path. layout.Order then projects those positions to a total node
// ordering, grouped by weakly connected component.
//
// Subpackages:
//
//	core/   the bidirected sequence graph, handles, weakly connected components
//	xp/     the read-only path index the engine samples against
//	itree/  the static pangenome-offset interval tree xp builds on
//	pgsgd/  the PG-SGD engine: schedule, sampler, worker pool, supervisor
//	layout/ the ordering projector
//	config/ TOML parameter-file loading
//	cmd/pglayout/ the command-line entry point
package layoutsgd
