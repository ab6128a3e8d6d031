package pgsgd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Params.Validate. Callers compare with
// errors.Is; no error string is matched by substring anywhere in this
// module.
var (
	ErrIterMax        = errors.New("pgsgd: iter_max must be >= 1")
	ErrIterPeak       = errors.New("pgsgd: iter_peak must be in [0, iter_max)")
	ErrMinTermUpdates = errors.New("pgsgd: min_term_updates must be >= 1")
	ErrDeltaStop      = errors.New("pgsgd: delta_stop must be > 0")
	ErrEps            = errors.New("pgsgd: eps must be > 0")
	ErrEtaMax         = errors.New("pgsgd: eta_max must be > 0")
	ErrTheta          = errors.New("pgsgd: theta must be > 0")
	ErrSpace          = errors.New("pgsgd: space must be >= 1")
	ErrNThreads       = errors.New("pgsgd: nthreads must be >= 1")
	ErrUsePaths       = errors.New("pgsgd: use_paths does not match the path index's built path set")
)

// IndexCorruptionError indicates the sampler drew a pangenome offset that no
// interval in the path index's interval tree covers: a gap in the index
// that should be contiguous. The original engine treats this as fatal index
// corruption and calls exit(1); this module's analogue is an unrecovered
// panic naming the offending position. Under RunDeterministic the panic
// reaches the caller; under Run it is raised on a worker goroutine and
// terminates the process.
type IndexCorruptionError struct {
	Pos uint64
	Err error
}

func (e *IndexCorruptionError) Error() string {
	return fmt.Sprintf("pgsgd: no overlapping interval at position %d: %v", e.Pos, e.Err)
}

func (e *IndexCorruptionError) Unwrap() error {
	return e.Err
}
