// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command switchsim runs the circuits of the gates library on the switch
// level simulator.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	sw "github.com/db47h/switchsim"
	"github.com/db47h/switchsim/internal/config"
	"github.com/db47h/switchsim/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "switchsim",
		Short: "Switch level CMOS circuit simulator",
		Long: `switchsim builds circuits out of N and P channel transistors and runs
them round by round until every wire settles.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Int("max-rounds", 0, "Round cap of a run (overrides the configuration)")
	rootCmd.PersistentFlags().Int("workers", 0, "Number of evaluation goroutines (overrides the configuration)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(),
		newRunCmd(),
		newTableCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "switchsim version %s\n", version)
		},
	}
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("max-rounds") {
		cfg.Sim.MaxRounds, _ = cmd.Flags().GetInt("max-rounds")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Sim.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.Logging.Format == "json" {
		return logging.NewJSONLogger(cfg.Logging.Level, w)
	}
	return logging.NewLogger(cfg.Logging.Level, w)
}

func circuitOptions(cmd *cobra.Command, cfg *config.Config) []sw.Option {
	return []sw.Option{
		sw.WithWorkers(cfg.Sim.Workers),
		sw.WithLogger(newLogger(cfg, cmd.ErrOrStderr())),
	}
}
