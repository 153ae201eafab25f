// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgp/dataset"
	"github.com/katalvlaran/lvgp/eval"
	"github.com/katalvlaran/lvgp/fitness"
	"github.com/katalvlaran/lvgp/program"
	"github.com/spf13/cobra"
)

type evalFlags struct {
	data    string
	target  string
	metric  string
	file    string
	predict bool
}

func newEvalCmd(root *rootFlags) *cobra.Command {
	var f evalFlags
	var cmd = &cobra.Command{
		Use:   "eval [program]",
		Short: "Score a program against a CSV file",
		Example: `  lvgp eval --data test.csv --target y "add(X0, mul(X1, 0.5))"
  lvgp eval --data test.csv --file best.txt --predict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, root, &f, args)
		},
	}
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "CSV to score against (overrides data.path)")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "target column name or index (default: last column)")
	cmd.Flags().StringVarP(&f.metric, "metric", "m", "", "mse|mae|rmse|pearson|spearman|logloss (overrides engine.metric)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read the program from this file")
	cmd.Flags().BoolVar(&f.predict, "predict", false, "also print one prediction per row")
	return cmd
}

func runEval(cmd *cobra.Command, root *rootFlags, f *evalFlags, args []string) error {
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
	if flags.Changed("metric") {
		cfg.Engine.Metric = f.metric
	}
	if cfg.Data.Path == "" {
		return fmt.Errorf("eval: no data: set --data or data.path")
	}

	text, err := programText(f.file, args)
	if err != nil {
		return err
	}
	prog, err := program.Parse(text)
	if err != nil {
		return err
	}
	metric, err := program.ParseMetric(cfg.Engine.Metric)
	if err != nil {
		return err
	}
	table, err := dataset.LoadCSV(cfg.Data.Path, cfg.CSVOptions())
	if err != nil {
		return err
	}

	pred, err := eval.Predict(prog, table.X)
	if err != nil {
		return err
	}
	score, err := fitness.Score(metric, len(pred), 1, table.Y, pred, nil)
	if err != nil {
		return err
	}

	var w = cmd.OutOrStdout()
	fmt.Fprintf(w, "program: %s\n", prog)
	fmt.Fprintf(w, "%s: %g\n", metric, score[0])
	if f.predict {
		for _, v := range pred {
			fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return nil
}

// programText takes the program from --file or the single argument, not both.
func programText(file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("eval: give the program as an argument or --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("eval: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("eval: no program given")
	}
}
