package pgsgd

import (
	"sync"
	"sync/atomic"
	"time"
)

// pollInterval is the fixed sleep between supervisor and snapshotter polls.
// The polling design is kept rather than switching to a condition variable,
// matching how the original engine's checker thread is structured.
const pollInterval = time.Millisecond

// runSupervisor advances the iteration counter, rotates eta, and decides
// termination. It always resets eta/Delta_max on a rotation that continues
// (unlike the deterministic variant, which skips the reset on the final
// iteration); the two are intentionally not unified.
//
// schedule[iteration] would go out of bounds on the rotation where iteration
// == len(schedule); the original C++ reads past the array end there (an
// unspecified/UB read). This implementation clamps the index to the last
// valid entry instead of reproducing that read.
func runSupervisor(schedule []float64, minTermUpdates uint64, deltaStop float64, progress bool, logger Logger,
	workTodo *atomic.Bool, eta, deltaMax *AtomicFloat64, termUpdates *atomic.Uint64, iteration *atomic.Int64) {
	for workTodo.Load() {
		if termUpdates.Load() > minTermUpdates {
			it := iteration.Add(1)
			switch {
			case it > int64(len(schedule)):
				workTodo.Store(false)
			case deltaMax.Load() <= deltaStop:
				if progress {
					logger.Printf("[pgsgd]: delta_max: %v <= delta: %v. Threshold reached, ending iterations.",
						deltaMax.Load(), deltaStop)
				}
				workTodo.Store(false)
			default:
				if progress {
					percent := (float64(it) / float64(len(schedule))) * 100.0
					logger.Printf("[pgsgd]: %.2f%% progress: iteration: %d, eta: %v, delta_max: %v, updates: %d",
						percent, it, eta.Load(), deltaMax.Load(), termUpdates.Load())
				}
				idx := it
				if idx >= int64(len(schedule)) {
					idx = int64(len(schedule)) - 1
				}
				eta.Store(schedule[idx])
				deltaMax.Store(deltaStop)
			}
			termUpdates.Store(0)
		}
		time.Sleep(pollInterval)
	}
}

// runSnapshotter periodically copies positions into snapshots. Capture is
// best-effort: it races with worker updates and is appended to only by this
// goroutine, guarded by mu.
func runSnapshotter(positions Positions, iterMax int, workTodo *atomic.Bool, iteration *atomic.Int64,
	snapshots *[][]float64, mu *sync.Mutex) {
	var last int64
	for workTodo.Load() {
		it := iteration.Load()
		if it > last && it != int64(iterMax) {
			snap := positions.Snapshot()
			mu.Lock()
			*snapshots = append(*snapshots, snap)
			mu.Unlock()
			last = it
		}
		time.Sleep(pollInterval)
	}
}
