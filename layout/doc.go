// Package layout implements the deterministic ordering projector: given a
// position vector X and a graph's weakly connected components, it produces
// a total node ordering grouped by component, ascending by each
// component's average node ID, then by X within a component, then by
// handle integer as a final tie-break.
//
// OrderFromEngine is Order under the engine-to-projector pipeline's name:
// it projects the output of pgsgd.Run or pgsgd.RunDeterministic, which the
// caller runs first.
package layout
