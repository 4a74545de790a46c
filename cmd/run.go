package cmd

import (
	"io"

	"github.com/beka-birhanu/gridwalk/config"
	"github.com/beka-birhanu/gridwalk/service"
	"github.com/spf13/cobra"
)

func runCmd(opts *rootOptions, out io.Writer) *cobra.Command {
	var showGrid bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan a path to the target and walk the agent along it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts, out, showGrid)
		},
	}
	cmd.Flags().BoolVar(&showGrid, "show", false, "draw the grid with the path after the walk")
	return cmd
}

func runSimulation(cmd *cobra.Command, opts *rootOptions, out io.Writer, showGrid bool) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	appLogger, err := newLogger(cfg, "APP", config.ColorGreen)
	if err != nil {
		return err
	}

	s, err := loadScenario(cfg)
	if err != nil {
		appLogger.Error("Loading scenario", "error", err)
		return err
	}

	solver, err := service.NewPathService(appLogger, &service.PathServiceOptions{CacheSize: cfg.CacheSize})
	if err != nil {
		return err
	}

	sim, err := service.NewSimulation(s, solver, appLogger, service.SimulationOptions{
		Out:      out,
		ShowGrid: showGrid,
	})
	if err != nil {
		return err
	}

	_, err = sim.Run(cmd.Context())
	return err
}
