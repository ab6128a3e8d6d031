package core_test

import (
	"sync"
	"testing"

	"github.com/pangraph/layoutsgd/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddNode ensures that concurrent AddNode calls are safe and
// every node ends up with a distinct, densely assigned index.
func TestConcurrentAddNode(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			_, err := g.AddNode(1)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(num), g.NodeCount())
}

// TestConcurrentReadDuringAddEdge exercises Neighbors/ForEachHandle racing
// against AddEdge on a fixed node set, verifying no panic and a consistent
// final adjacency view.
func TestConcurrentReadDuringAddEdge(t *testing.T) {
	g := core.NewGraph()
	const n = 50
	handles := make([]core.Handle, n)
	for i := 0; i < n; i++ {
		h, err := g.AddNode(1)
		require.NoError(t, err)
		handles[i] = h
	}

	var wg sync.WaitGroup
	wg.Add(2 * (n - 1))
	for i := 0; i < n-1; i++ {
		go func(i int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(handles[i], handles[i+1]))
		}(i)
		go func() {
			defer wg.Done()
			g.ForEachHandle(func(h core.Handle) bool {
				_ = g.Neighbors(h)
				return true
			})
		}()
	}
	wg.Wait()

	for i := 0; i < n-1; i++ {
		require.Equal(t, []core.Handle{handles[i+1]}, g.Neighbors(handles[i]))
	}
}
