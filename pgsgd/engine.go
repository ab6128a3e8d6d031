package pgsgd

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pangraph/layoutsgd/core"
	"github.com/pangraph/layoutsgd/xp"
)

// Run launches the multi-threaded PG-SGD engine and blocks until the
// supervisor terminates it, either by exhausting IterMax rotations or by
// converging (Delta_max <= DeltaStop). ctx layers an additional
// cancellation path over the engine's own work_todo signal: cancelling ctx
// sets work_todo false the same way the supervisor's own termination does.
// This is purely additive: Run's observable behavior when ctx is never
// cancelled is unchanged.
//
// A worker goroutine that draws a sample against a corrupted index panics
// with *IndexCorruptionError and is not recovered, matching the original
// engine's exit(1) abort on the same condition: the whole process
// terminates rather than returning a partial X the caller might mistake for
// a completed run.
func Run(ctx context.Context, graph core.PathHandleGraph, index *xp.PathIndex, usePaths []xp.PathID, params Params) (x []float64, snapshots [][]float64, err error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if params.NThreads < 1 {
		return nil, nil, ErrNThreads
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

	mode := params.SampleMode()
	included := buildPathFilter(index, usePaths)
	workTodo := &atomic.Bool{}
	workTodo.Store(true)
	eta := &AtomicFloat64{}
	eta.Store(schedule[0])
	deltaMax := &AtomicFloat64{}
	termUpdates := &atomic.Uint64{}
	iteration := &atomic.Int64{}

	var snapMu sync.Mutex
	var snaps [][]float64

	var workers sync.WaitGroup
	for t := 0; t < params.NThreads; t++ {
		workers.Add(1)
		go func(ordinal int) {
			defer workers.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(ordinal)))
			samp := newSampler(graph, index, mode, params.Theta, params.Space, included, rng)
			runWorker(samp, positions, workTodo, eta, deltaMax, termUpdates)
		}(t)
	}

	var support sync.WaitGroup
	support.Add(2)
	go func() {
		defer support.Done()
		runSupervisor(schedule, params.MinTermUpdates, params.DeltaStop, params.Progress, logger,
			workTodo, eta, deltaMax, termUpdates, iteration)
	}()
	go func() {
		defer support.Done()
		if params.Snapshot {
			runSnapshotter(positions, params.IterMax, workTodo, iteration, &snaps, &snapMu)
		} else {
			// Still drained below via workTodo; with no snapshotting to do,
			// just wait for termination rather than spinning a real poller.
			for workTodo.Load() {
				time.Sleep(pollInterval)
			}
		}
	}()

	if ctx != nil {
		go func() {
			for workTodo.Load() {
				select {
				case <-ctx.Done():
					workTodo.Store(false)
					return
				default:
					time.Sleep(pollInterval)
				}
			}
		}()
	}

	workers.Wait()
	workTodo.Store(false) // in case all workers exited via ctx before the supervisor rotated
	support.Wait()

	return positions.Snapshot(), snaps, nil
}
