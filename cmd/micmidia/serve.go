package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	landing "github.com/micmidia/landing"
)

func newServeCmd(s *settings) *cobra.Command {
	var staticDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if staticDir == "" {
				staticDir = landing.EnvOr("STATIC_DIR", "public")
			}
			app := landing.New(s.cfg, landing.WithStaticDir(staticDir), landing.WithLogger(slog.Default()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				return errors.Join(err, app.Close())
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "", "directory served under /public (default $STATIC_DIR or public)")
	return cmd
}
