package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jhonatansales/gestao-financeira/internal/api"
	"github.com/Jhonatansales/gestao-financeira/internal/common"
	"github.com/Jhonatansales/gestao-financeira/internal/ledger"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the ledger over HTTP. A background scheduler rolls spending limits
over into their next period every hour; reads roll over lazily as well, so the
scheduler only keeps idle data fresh.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			engine := ledger.New(store)
			server := &http.Server{
				Addr:         addr,
				Handler:      api.NewServer(engine).Handler(),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			}

			scheduler := cron.New()
			if _, err := scheduler.AddFunc("@hourly", func() {
				if err := engine.RolloverLimits(context.Background()); err != nil {
					common.LogError(err, "scheduled limit rollover failed", nil)
				}
			}); err != nil {
				return fmt.Errorf("failed to schedule limit rollover: %w", err)
			}
			scheduler.Start()
			defer scheduler.Stop()

			errChan := make(chan error, 1)
			go func() {
				slog.Info("http server listening", "addr", addr)
				errChan <- server.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("failed to shut down server: %w", err)
				}
				return nil
			case err := <-errChan:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
