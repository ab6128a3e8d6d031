package layout

import "errors"

var (
	// errNoComponents indicates graph does not expose
	// WeaklyConnectedComponents, which Order requires to group its output.
	// core.Graph always satisfies this; the interface check exists so Order
	// fails cleanly against a minimal core.PathHandleGraph stub rather than
	// panicking on a type assertion.
	errNoComponents = errors.New("layout: graph does not expose weakly connected components")

	// errPositionOutOfRange indicates x has fewer entries than graph has
	// nodes.
	errPositionOutOfRange = errors.New("layout: position vector shorter than node count")
)
