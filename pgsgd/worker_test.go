package pgsgd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// With mag > dij (the pair is farther apart than its target distance),
// applyUpdate must pull the pair together: the post-update gap is strictly
// smaller than the pre-update one.
func TestApplyUpdatePullsTogetherWhenFartherThanTarget(t *testing.T) {
	xi, xj := 0.0, 10.0 // mag = 10
	dij := 4.0

	newXi, newXj, _ := applyUpdate(1.0, dij, xi, xj)

	before := math.Abs(xi - xj)
	after := math.Abs(newXi - newXj)
	require.Less(t, after, before)
}

// With mag < dij (the pair is closer together than its target distance),
// applyUpdate must push the pair apart: the post-update gap is strictly
// larger than the pre-update one.
func TestApplyUpdatePushesApartWhenCloserThanTarget(t *testing.T) {
	xi, xj := 0.0, 2.0 // mag = 2
	dij := 10.0

	newXi, newXj, _ := applyUpdate(1.0, dij, xi, xj)

	before := math.Abs(xi - xj)
	after := math.Abs(newXi - newXj)
	require.Greater(t, after, before)
}

// No single step may move either coordinate by more than (mag-dij)/2 in
// absolute value, since mu is clamped to [.., 1] and delta = mu*(mag-dij)/2.
func TestApplyUpdateRespectsMagnitudeBound(t *testing.T) {
	cases := []struct {
		eta, dij, xi, xj float64
	}{
		{eta: 1.0, dij: 4.0, xi: 0.0, xj: 10.0},
		{eta: 1.0, dij: 10.0, xi: 0.0, xj: 2.0},
		{eta: 100.0, dij: 0.5, xi: -3.0, xj: 8.0}, // large eta forces mu to clamp at 1
		{eta: 0.01, dij: 1.0, xi: 0.0, xj: 1.0},
	}

	for _, c := range cases {
		mag := math.Abs(c.xi - c.xj)
		bound := math.Abs(mag-c.dij) / 2

		newXi, newXj, _ := applyUpdate(c.eta, c.dij, c.xi, c.xj)

		require.LessOrEqual(t, math.Abs(newXi-c.xi), bound+1e-9)
		require.LessOrEqual(t, math.Abs(newXj-c.xj), bound+1e-9)
	}
}

// Coincident positions (dx == 0) must not divide by zero; applyUpdate
// nudges dx to a small nonzero value internally so the update stays finite.
func TestApplyUpdateHandlesCoincidentPositions(t *testing.T) {
	newXi, newXj, delta := applyUpdate(1.0, 5.0, 3.0, 3.0)

	require.False(t, math.IsNaN(newXi))
	require.False(t, math.IsNaN(newXj))
	require.False(t, math.IsInf(delta, 0))
}
