package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pangraph/layoutsgd/config"
)

const sampleTOML = `
iter_max = 60
iter_peak = 10
min_term_updates = 500
delta_stop = 0.0001
eps = 0.01
eta_max = 10.0
theta = 0.99
space = 50
nthreads = 8
seed_string = "abc123"
deterministic = false
sample_from_paths = true
sample_from_nodes = false
snapshot = true
progress = true
`

func TestDecodeMapsEveryField(t *testing.T) {
	p, err := config.Decode([]byte(sampleTOML))
	require.NoError(t, err)

	require.Equal(t, 60, p.IterMax)
	require.Equal(t, 10, p.IterPeak)
	require.Equal(t, uint64(500), p.MinTermUpdates)
	require.InDelta(t, 0.0001, p.DeltaStop, 1e-12)
	require.InDelta(t, 0.01, p.Eps, 1e-12)
	require.InDelta(t, 10.0, p.EtaMax, 1e-12)
	require.InDelta(t, 0.99, p.Theta, 1e-12)
	require.Equal(t, 50, p.Space)
	require.Equal(t, 8, p.NThreads)
	require.Equal(t, []byte("abc123"), p.SeedString)
	require.False(t, p.Deterministic)
	require.True(t, p.SampleFromPaths)
	require.False(t, p.SampleFromNodes)
	require.True(t, p.Snapshot)
	require.True(t, p.Progress)

	require.NoError(t, p.Validate())
}

func TestDecodeRejectsMalformedTOML(t *testing.T) {
	_, err := config.Decode([]byte("iter_max = not-a-number"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/pglayout.toml")
	require.Error(t, err)
}

func TestDecodeZeroValueFileIsInvalidParams(t *testing.T) {
	p, err := config.Decode([]byte(""))
	require.NoError(t, err)
	require.Error(t, p.Validate(), "an empty config file should not silently pass validation")
}
