package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fact-atlas/pkg/server"
	"github.com/de-tools/fact-atlas/pkg/services/config"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the fact inspection web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "fact-atlas.yaml",
		"Path to the viewer configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := loader.NewRegistry(map[string]loader.LoaderFactory{
		"json": loader.JSONFactory,
	})
	l, err := registry.Create(cfg.ReportFormat, loader.Options{
		DuplicateAspects: cfg.DuplicateAspects,
	})
	if err != nil {
		return fmt.Errorf("failed to create report loader: %w", err)
	}

	rep, err := l.Load(cfg.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	logger.Info().
		Str("report", cfg.ReportPath).
		Str("instance", rep.ID()).
		Int("facts", len(rep.Facts())).
		Msg("report loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Report: rep,
			Logger: logger,
		},
	})

	return api.Start()
}
