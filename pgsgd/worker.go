package pgsgd

import (
	"math"
	"sync/atomic"
)

// applyUpdate computes one PG-SGD position update for a sampled pair with
// target distance dij and learning rate eta, given the pair's current
// positions xi, xj. It returns the updated positions and the step's delta
// (half the signed gap between the current and target distance, scaled by
// mu): positions move together when mag > dij and apart when mag < dij,
// by at most (mag-dij)/2 since mu is clamped to [.., 1].
//
// dx == 0 (coincident positions) is nudged to a small nonzero value so the
// direction r = delta/mag stays defined; this mirrors the original engine
// treating coincident positions as an edge case to route around rather
// than divide by zero on.
func applyUpdate(eta, dij, xi, xj float64) (newXi, newXj, delta float64) {
	w := 1.0 / dij
	mu := eta * w
	if mu > 1 {
		mu = 1
	}

	dx := xi - xj
	if dx == 0 {
		dx = 1e-9
	}
	mag := math.Abs(dx)

	delta = mu * (mag - dij) / 2
	r := delta / mag
	d := r * dx

	return xi - d, xj + d, delta
}

// runWorker is one SGD worker's loop. It runs until workTodo is observed
// false, which must happen before the worker's next sample once the
// supervisor has set it (release-acquire on the atomic.Bool is sufficient).
func runWorker(samp *sampler, positions Positions, workTodo *atomic.Bool, eta, deltaMax *AtomicFloat64, termUpdates *atomic.Uint64) {
	for workTodo.Load() {
		i, j, dij, ok := samp.sample()
		if !ok {
			continue
		}

		newXi, newXj, delta := applyUpdate(eta.Load(), dij, positions[i].Load(), positions[j].Load())
		updateMax(deltaMax, math.Abs(delta))

		positions[i].Store(newXi)
		positions[j].Store(newXj)

		termUpdates.Add(1)
	}
}
