package pgsgd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pangraph/layoutsgd/core"
)

// After initPositions, for any two consecutive handles h, h' in the
// graph's traversal order, X[node_index(h')] - X[node_index(h)] must equal
// length(h): nodes start laid out end-to-end with no gaps or overlaps.
func TestInitPositionsLaysNodesEndToEnd(t *testing.T) {
	g := core.NewGraph()
	lengths := []uint64{3, 7, 1, 5}
	for _, l := range lengths {
		_, err := g.AddNode(l)
		require.NoError(t, err)
	}

	positions := NewPositions(4)
	initPositions(g, positions)

	var want float64
	for i, l := range lengths {
		require.Equal(t, want, positions[i].Load())
		want += float64(l)
	}
}

func TestInitPositionsSingleNodeStartsAtZero(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(42)
	require.NoError(t, err)

	positions := NewPositions(1)
	initPositions(g, positions)

	require.Equal(t, 0.0, positions[0].Load())
}
