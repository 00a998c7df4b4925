package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhineethp/repostats/internal/api"
	"github.com/abhineethp/repostats/internal/cache"
	"github.com/abhineethp/repostats/internal/github"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Fail fast if the cache store is unreachable at boot; after boot a
		// cache outage degrades to pass-through fetching.
		store, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer store.Close()

		fetcher := github.NewClient(cfg.RepoOwner, cfg.RepoName, cfg.GitHubToken, cfg.RateLimit)
		server := api.NewServer(cfg, store, store, fetcher)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: server.Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server listening", "port", cfg.Port)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
