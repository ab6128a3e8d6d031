package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pangraph/layoutsgd/config"
	"github.com/pangraph/layoutsgd/layout"
	"github.com/pangraph/layoutsgd/pgsgd"
)

func newLayoutCmd() *cobra.Command {
	var (
		configPath string
		params     pgsgd.Params
		seedString string
	)

	cmd := &cobra.Command{
		Use:   "layout <fixture.json>",
		Short: "Compute and print a node ordering for a fixture graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.SeedString = []byte(seedString)
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("pglayout: loading config: %w", err)
				}
				applyUnsetFlags(cmd, &params, loaded)
			}

			if err := params.Validate(); err != nil {
				return err
			}

			logger := newLogger()
			params.Logger = chlogAdapter{logger: logger}

			graph, index, err := loadFixture(args[0])
			if err != nil {
				return err
			}
			usePaths := usePathsFor(index)

			var (
				x         []float64
				snapshots [][]float64
			)
			if params.Deterministic {
				x, snapshots, err = pgsgd.RunDeterministic(graph, index, usePaths, params, params.SeedString)
			} else {
				x, snapshots, err = pgsgd.Run(context.Background(), graph, index, usePaths, params)
			}
			if err != nil {
				return err
			}

			order, _, err := layout.Order(graph, x, snapshots)
			if err != nil {
				return err
			}

			fmt.Println(formatOrder(order))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&params.IterMax, "iter-max", 30, "maximum supervisor rotations (T)")
	flags.IntVar(&params.IterPeak, "iter-peak", 0, "iteration of peak learning rate (t*)")
	flags.Uint64Var(&params.MinTermUpdates, "min-term-updates", 100, "supervisor rotation threshold")
	flags.Float64Var(&params.DeltaStop, "delta-stop", 1e-6, "convergence threshold on Delta_max")
	flags.Float64Var(&params.Eps, "eps", 0.01, "eta_min scaling factor")
	flags.Float64Var(&params.EtaMax, "eta-max", 10, "sets w_min = 1/eta_max")
	flags.Float64Var(&params.Theta, "theta", 0.99, "Zipfian skew")
	flags.IntVar(&params.Space, "space", 100, "Zipfian support upper bound")
	flags.IntVar(&params.NThreads, "nthreads", 4, "worker goroutine count")
	flags.StringVar(&seedString, "seed-string", "", "seed for the deterministic variant")
	flags.BoolVar(&params.Deterministic, "deterministic", false, "use the single-goroutine reproducible engine")
	flags.BoolVar(&params.SampleFromPaths, "sample-from-paths", false, "sample mode P instead of mode B")
	flags.BoolVar(&params.SampleFromNodes, "sample-from-nodes", false, "sample mode N (overrides mode P)")
	flags.BoolVar(&params.Snapshot, "snapshot", false, "capture periodic position snapshots")
	flags.BoolVar(&params.Progress, "progress", false, "emit progress output")
	flags.StringVar(&configPath, "config", "", "path to a pglayout.toml parameter file")

	return cmd
}

// applyUnsetFlags fills params' fields from loaded wherever the
// corresponding flag was not explicitly set on the command line, giving
// flags precedence over the config file.
func applyUnsetFlags(cmd *cobra.Command, params *pgsgd.Params, loaded pgsgd.Params) {
	set := cmd.Flags().Changed
	if !set("iter-max") {
		params.IterMax = loaded.IterMax
	}
	if !set("iter-peak") {
		params.IterPeak = loaded.IterPeak
	}
	if !set("min-term-updates") {
		params.MinTermUpdates = loaded.MinTermUpdates
	}
	if !set("delta-stop") {
		params.DeltaStop = loaded.DeltaStop
	}
	if !set("eps") {
		params.Eps = loaded.Eps
	}
	if !set("eta-max") {
		params.EtaMax = loaded.EtaMax
	}
	if !set("theta") {
		params.Theta = loaded.Theta
	}
	if !set("space") {
		params.Space = loaded.Space
	}
	if !set("nthreads") {
		params.NThreads = loaded.NThreads
	}
	if !set("seed-string") {
		params.SeedString = loaded.SeedString
	}
	if !set("deterministic") {
		params.Deterministic = loaded.Deterministic
	}
	if !set("sample-from-paths") {
		params.SampleFromPaths = loaded.SampleFromPaths
	}
	if !set("sample-from-nodes") {
		params.SampleFromNodes = loaded.SampleFromNodes
	}
	if !set("snapshot") {
		params.Snapshot = loaded.Snapshot
	}
	if !set("progress") {
		params.Progress = loaded.Progress
	}
}
