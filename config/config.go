package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pangraph/layoutsgd/pgsgd"
)

// File is the on-disk shape of a pglayout.toml parameter file. Keys are the
// recognized parameter names in lowercase with underscores (iter_max), while
// the matching CLI flags use hyphens (--iter-max).
type File struct {
	IterMax         int     `toml:"iter_max"`
	IterPeak        int     `toml:"iter_peak"`
	MinTermUpdates  uint64  `toml:"min_term_updates"`
	DeltaStop       float64 `toml:"delta_stop"`
	Eps             float64 `toml:"eps"`
	EtaMax          float64 `toml:"eta_max"`
	Theta           float64 `toml:"theta"`
	Space           int     `toml:"space"`
	NThreads        int     `toml:"nthreads"`
	SeedString      string  `toml:"seed_string"`
	Deterministic   bool    `toml:"deterministic"`
	SampleFromPaths bool    `toml:"sample_from_paths"`
	SampleFromNodes bool    `toml:"sample_from_nodes"`
	Snapshot        bool    `toml:"snapshot"`
	Progress        bool    `toml:"progress"`
}

// Load reads path as a TOML parameter file and returns the corresponding
// pgsgd.Params. It does not call Params.Validate; the caller does that
// once CLI flags have had a chance to override whatever Load read, matching
// how cmd/pglayout layers config file defaults under explicit flags.
func Load(path string) (pgsgd.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pgsgd.Params{}, err
	}
	return Decode(data)
}

// Decode parses TOML-encoded parameter data directly, for callers (and
// tests) that don't want to go through the filesystem.
func Decode(data []byte) (pgsgd.Params, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return pgsgd.Params{}, err
	}
	return f.toParams(), nil
}

func (f File) toParams() pgsgd.Params {
	return pgsgd.Params{
		IterMax:         f.IterMax,
		IterPeak:        f.IterPeak,
		MinTermUpdates:  f.MinTermUpdates,
		DeltaStop:       f.DeltaStop,
		Eps:             f.Eps,
		EtaMax:          f.EtaMax,
		Theta:           f.Theta,
		Space:           f.Space,
		NThreads:        f.NThreads,
		SeedString:      []byte(f.SeedString),
		Deterministic:   f.Deterministic,
		SampleFromPaths: f.SampleFromPaths,
		SampleFromNodes: f.SampleFromNodes,
		Snapshot:        f.Snapshot,
		Progress:        f.Progress,
	}
}
