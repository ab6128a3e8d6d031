package pgsgd_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/pgsgd"
	"github.com/pangraph/layoutsgd/xp"
)

func onePathGraph(t *testing.T, nodeLengths ...uint64) (core.PathHandleGraph, *xp.PathIndex) {
	t.Helper()
	g := core.NewGraph()
	steps := make([]core.Handle, len(nodeLengths))
	for i, l := range nodeLengths {
		idx, err := g.AddNode(l)
		require.NoError(t, err)
		steps[i] = idx
	}
	idx, err := xp.Build(g, []xp.PathDef{{Steps: steps}})
	require.NoError(t, err)
	return g, idx
}

func allPaths(idx *xp.PathIndex) []xp.PathID {
	out := make([]xp.PathID, idx.PathCount())
	for i := range out {
		out[i] = xp.PathID(i)
	}
	return out
}

// A single node on a single-step path rejects every sampling attempt: the
// one occupied offset always compares equal to itself, so d_ij is always
// zero. The bounded deterministic loop is the variant guaranteed to
// terminate on it regardless, and X must come back unchanged at [0.0].
func TestRunDeterministicSingleNodeLeavesPositionUnchanged(t *testing.T) {
	g, idx := onePathGraph(t, 5)

	params := pgsgd.Params{
		IterMax:        3,
		IterPeak:       0,
		MinTermUpdates: 20,
		DeltaStop:      1e-6,
		Eps:            0.01,
		EtaMax:         10,
		Theta:          0.99,
		Space:          10,
	}
	require.NoError(t, params.Validate())

	x, _, err := pgsgd.RunDeterministic(g, idx, allPaths(idx), params, []byte("scenario-a"))
	require.NoError(t, err)
	require.Equal(t, []float64{0.0}, x)
}

// A run over a short multi-node path returns one position per node, and
// every position stays finite.
func TestRunDeterministicStaysFiniteOnShortPath(t *testing.T) {
	g, idx := onePathGraph(t, 3, 4, 2, 6)

	params := pgsgd.Params{
		IterMax:        50,
		IterPeak:       5,
		MinTermUpdates: 200,
		DeltaStop:      1e-4,
		Eps:            0.01,
		EtaMax:         10,
		Theta:          0.99,
		Space:          15,
	}
	require.NoError(t, params.Validate())

	x, _, err := pgsgd.RunDeterministic(g, idx, allPaths(idx), params, []byte("scenario-b"))
	require.NoError(t, err)
	require.Len(t, x, 4)
	for _, v := range x {
		require.False(t, isNaNOrInf(v))
	}
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}

// RunDeterministic called twice with identical inputs and seed_string must
// produce byte-identical X and snapshots on the same process.
func TestRunDeterministicIsReproducibleAcrossCalls(t *testing.T) {
	g, idx := onePathGraph(t, 3, 4, 2, 6)

	params := pgsgd.Params{
		IterMax:        20,
		IterPeak:       3,
		MinTermUpdates: 50,
		DeltaStop:      1e-4,
		Eps:            0.01,
		EtaMax:         10,
		Theta:          0.99,
		Space:          10,
		Snapshot:       true,
	}
	require.NoError(t, params.Validate())

	x1, snaps1, err := pgsgd.RunDeterministic(g, idx, allPaths(idx), params, []byte("reproducibility-check"))
	require.NoError(t, err)
	x2, snaps2, err := pgsgd.RunDeterministic(g, idx, allPaths(idx), params, []byte("reproducibility-check"))
	require.NoError(t, err)

	require.Equal(t, x1, x2)
	require.Equal(t, snaps1, snaps2)
}

// Run's own NThreads gate is checked independently of Params.Validate, since
// RunDeterministic ignores NThreads entirely.
func TestRunRejectsZeroThreads(t *testing.T) {
	g, idx := onePathGraph(t, 3, 4)
	params := pgsgd.Params{
		IterMax: 1, IterPeak: 0, MinTermUpdates: 1, DeltaStop: 1e-6,
		Eps: 0.01, EtaMax: 10, Theta: 0.99, Space: 5, NThreads: 0,
	}
	_, _, err := pgsgd.Run(context.Background(), g, idx, allPaths(idx), params)
	require.ErrorIs(t, err, pgsgd.ErrNThreads)
}

// Run honors ctx cancellation as an additive termination path: a
// pre-cancelled context must not hang the call even with an IterMax large
// enough that the supervisor alone would run for a long time.
func TestRunHonorsContextCancellation(t *testing.T) {
	g, idx := onePathGraph(t, 3, 4, 5, 6, 7)
	params := pgsgd.Params{
		IterMax: 1_000_000, IterPeak: 0, MinTermUpdates: 1_000_000, DeltaStop: 1e-9,
		Eps: 0.01, EtaMax: 10, Theta: 0.99, Space: 10, NThreads: 2,
	}
	require.NoError(t, params.Validate())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, err := pgsgd.Run(ctx, g, idx, allPaths(idx), params)
		require.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not honor context cancellation")
	}
}

func TestRunRejectsUsePathsMismatch(t *testing.T) {
	g, idx := onePathGraph(t, 3, 4)
	params := pgsgd.Params{
		IterMax: 1, IterPeak: 0, MinTermUpdates: 1, DeltaStop: 1e-6,
		Eps: 0.01, EtaMax: 10, Theta: 0.99, Space: 5, NThreads: 1,
	}
	_, _, err := pgsgd.Run(context.Background(), g, idx, []xp.PathID{7}, params)
	require.ErrorIs(t, err, pgsgd.ErrUsePaths)
}
