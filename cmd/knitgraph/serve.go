package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/knitlab/knitgraph/internal/cli/config"
	"github.com/knitlab/knitgraph/internal/store"
	"github.com/knitlab/knitgraph/internal/web/handlers"
	"github.com/knitlab/knitgraph/internal/web/server"
)

var (
	serveHost string
	servePort int
	serveData string
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "Path to the knit metadata file (overrides config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the knit metadata API",
	Long:  "Start the HTTP server that answers graph and class queries over the knit metadata document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if serveHost != "" {
			cfg.Server.Host = serveHost
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if serveData != "" {
			cfg.Data.Path = serveData
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}

		st := store.New(cfg.Data.Path)
		h := handlers.New(st, logger)

		serverCfg := server.DefaultConfig(h.Router())
		serverCfg.Address = cfg.Server.Addr()

		srv, err := server.New(serverCfg)
		if err != nil {
			return fmt.Errorf("create server: %w", err)
		}

		successColor := color.New(color.FgGreen, color.Bold)
		infoColor := color.New(color.FgCyan)
		successColor.Printf("Knitgraph server listening on %s\n", serverCfg.Address)
		infoColor.Printf("Serving knit metadata from %s\n", cfg.Data.Path)

		shutdownCfg := server.DefaultShutdownConfig()
		shutdownCfg.Logger = logger

		gs := server.NewGracefulShutdown(srv, shutdownCfg)
		gs.RegisterHook(func(ctx context.Context) error {
			logger.Sync()
			return nil
		})

		return gs.Start()
	},
}
