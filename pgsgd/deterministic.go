package pgsgd

import (
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/xp"
)

// seedFromBytes hashes seed with unkeyed 64-bit FNV-1a, so the same
// seed_string yields the same *rand.Rand trajectory in every process.
func seedFromBytes(seed []byte) int64 {
	h := fnv.New64a()
	h.Write(seed)
	return int64(h.Sum64())
}

// RunDeterministic is the single-goroutine, reproducible variant of Run. It
// does not use Positions' atomics for synchronization since a single
// goroutine never races with itself, but keeps the same slot layout so the
// per-step update rule matches the multi-threaded engine's.
//
// It runs exactly IterMax iterations of MinTermUpdates inner steps unless
// early-stop fires between iterations, and records a snapshot at the start
// of each iteration before the last. Unlike runSupervisor, this loop resets
// eta/Delta_max only when a next iteration exists; the two variants'
// reset timing is intentionally not unified.
func RunDeterministic(graph core.PathHandleGraph, index *xp.PathIndex, usePaths []xp.PathID, params Params, seedString []byte) (x []float64, snapshots [][]float64, err error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if err := validateUsePaths(index, usePaths); err != nil {
		return nil, nil, err
	}
	logger := params.Logger
	if logger == nil {
		logger = DefaultLogger()
	}

	n := int(graph.NodeCount())
	positions := NewPositions(n)
	initPositions(graph, positions)

	schedule, err := GenerateSchedule(1.0/params.EtaMax, 1.0, params.IterMax, params.IterPeak, params.Eps)
	if err != nil {
		return nil, nil, err
	}

	included := buildPathFilter(index, usePaths)
	rng := rand.New(rand.NewSource(seedFromBytes(seedString)))
	samp := newSampler(graph, index, params.SampleMode(), params.Theta, params.Space, included, rng)

	eta := &AtomicFloat64{}
	eta.Store(schedule[0])
	deltaMax := &AtomicFloat64{}
	var snaps [][]float64

	for iteration := 0; iteration < params.IterMax; iteration++ {
		if params.Snapshot && iteration < params.IterMax-1 {
			snaps = append(snaps, positions.Snapshot())
		}

		for step := uint64(0); step < params.MinTermUpdates; step++ {
			i, j, dij, ok := samp.sample()
			if !ok {
				continue
			}

			newXi, newXj, delta := applyUpdate(eta.Load(), dij, positions[i].Load(), positions[j].Load())
			if d := math.Abs(delta); d > deltaMax.Load() {
				deltaMax.Store(d)
			}

			positions[i].Store(newXi)
			positions[j].Store(newXj)
		}

		if deltaMax.Load() <= params.DeltaStop {
			if params.Progress {
				logger.Printf("[pgsgd]: delta_max: %v <= delta: %v. Threshold reached, ending iterations.",
					deltaMax.Load(), params.DeltaStop)
			}
			break
		}

		if params.Progress {
			percent := (float64(iteration+1) / float64(params.IterMax)) * 100.0
			logger.Printf("[pgsgd]: %.2f%% progress: iteration: %d, eta: %v, delta_max: %v",
				percent, iteration+1, eta.Load(), deltaMax.Load())
		}

		if iteration+1 < params.IterMax {
			eta.Store(schedule[iteration+1])
			deltaMax.Store(params.DeltaStop)
		}
	}

	return positions.Snapshot(), snaps, nil
}
