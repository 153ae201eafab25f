// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvgp/dataset"
	"github.com/katalvlaran/lvgp/evolve"
	"github.com/spf13/cobra"
)

type fitFlags struct {
	data        string
	target      string
	seed        uint64
	generations int
	population  int
	workers     int
	metricsAddr string
	trace       bool
	out         string
}

func newFitCmd(root *rootFlags) *cobra.Command {
	var f fitFlags
	var cmd = &cobra.Command{
		Use:   "fit",
		Short: "Evolve a program that predicts the target column",
		Long: `Evolve a population of programs against a CSV file and print the best one.

Every numeric column except the target is a feature; feature j is X<j> in
the order the columns appear. Flags override the matching config keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFit(cmd, root, &f)
		},
	}
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "training CSV (overrides data.path)")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "target column name or index (default: last column)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed")
	cmd.Flags().IntVarP(&f.generations, "generations", "g", 0, "maximum generations")
	cmd.Flags().IntVarP(&f.population, "population", "p", 0, "population size")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "evaluation/breeding workers (0: GOMAXPROCS)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while fitting")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "export OpenTelemetry spans to stderr")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the best program to this file")
	return cmd
}

func runFit(cmd *cobra.Command, root *rootFlags, f *fitFlags) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	var flags = cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = f.data
	}
	if flags.Changed("target") {
		cfg.Data.Target = f.target
	}
	if flags.Changed("seed") {
		cfg.Evolution.Seed = f.seed
	}
	if flags.Changed("generations") {
		cfg.Evolution.Generations = f.generations
	}
	if flags.Changed("population") {
		cfg.Evolution.PopulationSize = f.population
	}
	if flags.Changed("workers") {
		cfg.Evolution.Workers = f.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.Data.Path == "" {
		return fmt.Errorf("fit: no data: set --data or data.path")
	}

	log, err := root.logger(cmd, cfg)
	if err != nil {
		return err
	}
	var ctx = cmd.Context()

	if f.trace {
		shutdown, err := setupTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Warn("trace shutdown", slog.Any("error", err))
			}
		}()
	}
	if f.metricsAddr != "" {
		var stop = serveMetrics(f.metricsAddr, log)
		defer stop(ctx)
	}

	table, err := dataset.LoadCSV(cfg.Data.Path, cfg.CSVOptions())
	if err != nil {
		return err
	}
	log.Info("data loaded",
		slog.String("path", cfg.Data.Path),
		slog.Int("rows", table.X.Rows()),
		slog.Int("features", table.X.Cols()))

	params, err := cfg.Params(table.X.Cols())
	if err != nil {
		return err
	}
	var opts = cfg.Options()
	opts.Logger = log

	res, err := evolve.Run(ctx, params, opts, table.X, table.Y)
	if err != nil {
		return err
	}

	var w = cmd.OutOrStdout()
	fmt.Fprintf(w, "run_id:      %s\n", res.RunID)
	fmt.Fprintf(w, "generations: %d\n", len(res.History))
	fmt.Fprintf(w, "best:        %s\n", res.Best)
	fmt.Fprintf(w, "%-13s%g\n", params.Metric.String()+":", res.Best.RawFitness)
	fmt.Fprintf(w, "length:      %d\n", res.Best.Len())
	fmt.Fprintf(w, "depth:       %d\n", res.Best.Depth)
	fmt.Fprintf(w, "features:    %s\n", featureLegend(table.Names))

	if f.out != "" {
		if err = os.WriteFile(f.out, []byte(res.Best.String()+"\n"), 0o644); err != nil {
			return fmt.Errorf("fit: write %q: %w", f.out, err)
		}
	}
	return nil
}

// featureLegend maps X<j> back to column names, e.g. "X0=a X1=b".
func featureLegend(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	var parts = make([]string, len(names))
	for j, name := range names {
		parts[j] = fmt.Sprintf("X%d=%s", j, name)
	}
	return strings.Join(parts, " ")
}
