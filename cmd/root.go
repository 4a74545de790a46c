// Package cmd wires the gridwalk command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/gridwalk/config"
	"github.com/beka-birhanu/gridwalk/logger"
	"github.com/beka-birhanu/gridwalk/scenario"
	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags shared by subcommands.
type rootOptions struct {
	scenarioPath string
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand is the same as "run".
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "gridwalk",
		Short:         "Shortest-path search for an agent on a static grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts, out, false)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "YAML scenario file (default: built-in 5x5 sample, or $GRIDWALK_SCENARIO)")

	rootCmd.AddCommand(runCmd(opts, out))
	rootCmd.AddCommand(renderCmd(opts, out))
	rootCmd.AddCommand(serveCmd(opts))
	return rootCmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment configuration; a --scenario flag wins over GRIDWALK_SCENARIO.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.scenarioPath != "" {
		cfg.ScenarioFile = o.scenarioPath
	}
	return cfg, nil
}

func loadScenario(cfg config.Config) (*scenario.Scenario, error) {
	if cfg.ScenarioFile == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(cfg.ScenarioFile)
}

// newLogger creates a component logger on stderr so stdout carries only the transcript.
func newLogger(cfg config.Config, prefix, color string) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.NewWithLevel(prefix, color, os.Stderr, level)
}
