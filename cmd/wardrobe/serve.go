package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wardrobe/m/internal/api"
	"wardrobe/m/internal/metrics"
	"wardrobe/m/internal/migrations"
	"wardrobe/m/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the homepage and the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.HTTPPort = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := migrations.Run(ctx, a.db); err != nil {
				return err
			}

			opts := api.Options{Logger: a.log, AllowedOrigins: a.cfg.Origins()}
			if a.cfg.MetricsEnabled {
				opts.Metrics = metrics.New()
			}
			handler, err := api.New(store.New(a.db), opts)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              a.cfg.Addr(),
				Handler:           handler.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			a.log.Info("wardrobe server starting", "addr", srv.Addr, "env", a.cfg.Env)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			a.log.Info("graceful shutdown complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides HTTP_PORT)")
	return cmd
}
