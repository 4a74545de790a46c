package cmd

import (
	"fmt"

	"github.com/beka-birhanu/gridwalk/api"
	apii "github.com/beka-birhanu/gridwalk/api/i"
	pathapi "github.com/beka-birhanu/gridwalk/api/path"
	"github.com/beka-birhanu/gridwalk/config"
	"github.com/beka-birhanu/gridwalk/service"
	"github.com/spf13/cobra"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shortest-path search over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			appLogger, err := newLogger(cfg, "APP", config.ColorGreen)
			if err != nil {
				return err
			}
			pathLogger, err := newLogger(cfg, "PATH-SERVICE", config.ColorCyan)
			if err != nil {
				return err
			}

			s, err := loadScenario(cfg)
			if err != nil {
				appLogger.Error("Loading scenario", "error", err)
				return err
			}

			solver, err := service.NewPathService(pathLogger, &service.PathServiceOptions{CacheSize: cfg.CacheSize})
			if err != nil {
				return fmt.Errorf("creating path service: %w", err)
			}
			appLogger.Info("Path service initialized", "cache", cfg.CacheSize)

			pathController, err := pathapi.NewPathController(solver, s)
			if err != nil {
				return fmt.Errorf("creating path controller: %w", err)
			}

			router := api.NewRouter(api.Config{
				Addr:        addr,
				BaseURL:     "/api",
				GinMode:     cfg.GinMode,
				Controllers: []apii.Controller{pathController},
			})
			appLogger.Info("Router initialized", "addr", addr)

			return router.Run()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HOST_IP:$REST_PORT)")
	return cmd
}
