package core_test

import (
	"testing"

	"github.com/pangraph/layoutsgd/core"
	"github.com/stretchr/testify/require"
)

func buildPath3(t *testing.T) (*core.Graph, []core.Handle) {
	t.Helper()
	g := core.NewGraph()

	h0, err := g.AddNode(5)
	require.NoError(t, err)
	h1, err := g.AddNode(3)
	require.NoError(t, err)
	h2, err := g.AddNode(8)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(h0, h1))
	require.NoError(t, g.AddEdge(h1, h2))

	return g, []core.Handle{h0, h1, h2}
}

func TestAddNodeRejectsZeroLength(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(0)
	require.ErrorIs(t, err, core.ErrZeroLength)
}

func TestAddEdgeRejectsUnknownNode(t *testing.T) {
	g := core.NewGraph()
	h0, err := g.AddNode(1)
	require.NoError(t, err)

	ghost := core.PackHandle(99, false)
	require.ErrorIs(t, g.AddEdge(h0, ghost), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(ghost, h0), core.ErrNodeNotFound)
}

func TestForEachHandleVisitsInInsertionOrder(t *testing.T) {
	g, handles := buildPath3(t)

	var seen []core.Handle
	g.ForEachHandle(func(h core.Handle) bool {
		seen = append(seen, h)
		return true
	})

	require.Equal(t, handles, seen)
}

func TestForEachHandleStopsEarly(t *testing.T) {
	g, _ := buildPath3(t)

	count := 0
	g.ForEachHandle(func(core.Handle) bool {
		count++
		return count < 2
	})

	require.Equal(t, 2, count)
}

func TestLengthAndID(t *testing.T) {
	g, handles := buildPath3(t)

	require.Equal(t, uint64(5), g.Length(handles[0]))
	require.Equal(t, uint64(3), g.Length(handles[1]))
	require.Equal(t, uint64(1), g.ID(handles[0]))
	require.Equal(t, uint64(3), g.ID(handles[2]))
}

func TestNeighbors(t *testing.T) {
	g, handles := buildPath3(t)

	nbs := g.Neighbors(handles[0])
	require.Equal(t, []core.Handle{handles[1]}, nbs)

	require.Empty(t, g.Neighbors(handles[2]))
}

func TestNeighborsReturnsACopy(t *testing.T) {
	g, handles := buildPath3(t)

	nbs := g.Neighbors(handles[0])
	nbs[0] = core.PackHandle(42, false)

	require.Equal(t, []core.Handle{handles[1]}, g.Neighbors(handles[0]))
}
