// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvgp/config"
	"github.com/katalvlaran/lvgp/internal/logging"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=…".
var version = "dev"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
	config    string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	var root = &cobra.Command{
		Use:           "lvgp",
		Short:         "Genetic-programming symbolic regression",
		Long:          "lvgp evolves arithmetic expression programs that fit a target column of numeric CSV data.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "text|json (overrides config)")
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "YAML run configuration")

	root.AddCommand(
		newFitCmd(&flags),
		newEvalCmd(&flags),
		newConfigCmd(&flags),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads --config or falls back to the defaults.
func (f *rootFlags) loadConfig() (config.Config, error) {
	if f.config == "" {
		return config.Default(), nil
	}
	return config.Load(f.config)
}

// logger builds the CLI logger on cmd's stderr; flags win over the config.
func (f *rootFlags) logger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	var name, format = cfg.Log.Level, cfg.Log.Format
	if f.logLevel != "" {
		name = f.logLevel
	}
	if f.logFormat != "" {
		format = f.logFormat
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	if format != "" && format != "text" && format != "json" {
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return logging.New(logging.Config{
		Level:   level,
		JSON:    format == "json",
		Service: "lvgp",
		Output:  cmd.ErrOrStderr(),
	}), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvgp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvgp %s\n", version)
		},
	}
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
