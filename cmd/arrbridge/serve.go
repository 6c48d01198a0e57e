package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arrbridge/arrbridge/internal/api"
	"github.com/arrbridge/arrbridge/internal/config"
	"github.com/arrbridge/arrbridge/internal/openlibrary"
	"github.com/arrbridge/arrbridge/internal/overseerr"
	"github.com/arrbridge/arrbridge/internal/radarr"
	"github.com/arrbridge/arrbridge/internal/readarr"
	"github.com/arrbridge/arrbridge/internal/sonarr"
	"github.com/arrbridge/arrbridge/internal/workflow"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the proxy daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServe() error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	deps := buildDeps(cfg, logger)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           api.New(deps, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server starting",
		"addr", cfg.Address(),
		"config", path,
		"readarr", cfg.Services.Readarr != nil,
		"radarr", cfg.Services.Radarr != nil,
		"sonarr", cfg.Services.Sonarr != nil,
		"overseerr", cfg.Services.Overseerr != nil,
		"openlibrary", cfg.OpenLibrary.Enabled,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// buildDeps wires the configured upstream clients into the dispatcher's
// dependency set. Unconfigured services stay nil.
func buildDeps(cfg *config.Config, logger *slog.Logger) api.Deps {
	deps := api.Deps{
		Defaults: api.Defaults{
			RootFolder:        cfg.Defaults.RootFolder,
			QualityProfileID:  cfg.Defaults.QualityProfileID,
			MetadataProfileID: cfg.Defaults.MetadataProfileID,
		},
	}

	if svc := cfg.Services.Readarr; svc != nil {
		client := readarr.New(svc.URL, svc.APIKey, readarr.WithLogger(logger))

		var secondary workflow.Bibliographic
		if cfg.OpenLibrary.Enabled {
			secondary = openlibrary.New(
				openlibrary.WithBaseURL(cfg.OpenLibrary.URL),
				openlibrary.WithLogger(logger),
			)
		}

		deps.Readarr = client
		deps.Books = workflow.NewService(client, secondary, logger)
	}

	if svc := cfg.Services.Radarr; svc != nil {
		client := radarr.New(svc.URL, svc.APIKey, radarr.WithLogger(logger))
		deps.Movies = radarr.NewFlow(client, logger)
	}

	if svc := cfg.Services.Sonarr; svc != nil {
		client := sonarr.New(svc.URL, svc.APIKey, sonarr.WithLogger(logger))
		deps.Series = sonarr.NewFlow(client, logger)
	}

	if svc := cfg.Services.Overseerr; svc != nil {
		deps.Requests = overseerr.New(svc.URL, svc.APIKey, overseerr.WithLogger(logger))
	}

	return deps
}
