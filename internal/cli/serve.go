package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/aretw0/vignes/internal/adapters/http"
	"github.com/aretw0/vignes/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newServeCmd(global *GlobalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and JSON API",
		Long:  `Starts the HTTP server exposing the French web form, the JSON API under /api/v1 and, when enabled, Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(*global)
			if err != nil {
				return err
			}
			if addr != "" {
				app.Config.Server.Addr = addr
			}

			srv, err := newHTTPServer(app)
			if err != nil {
				return err
			}

			if isTerminal(cmd.OutOrStdout()) {
				tui.PrintBanner(cmd.OutOrStdout(), termenv.EnvColorProfile())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, app, srv)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (overrides server.addr)")
	return cmd
}

func newHTTPServer(app *App) (*http.Server, error) {
	opts := []httpAdapter.Option{httpAdapter.WithLogger(app.Logger)}
	if app.Metrics != nil {
		opts = append(opts, httpAdapter.WithMetrics(app.Metrics.Handler()))
	}

	handler, err := httpAdapter.NewHandler(app.Estimator, opts...)
	if err != nil {
		return nil, fmt.Errorf("error building HTTP handler: %w", err)
	}

	return &http.Server{
		Addr:         app.Config.Server.Addr,
		Handler:      handler,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}, nil
}

// runServer serves until ctx is done, then shuts srv down within the configured timeout.
func runServer(ctx context.Context, app *App, srv *http.Server) error {
	serverErrors := make(chan error, 1)

	go func() {
		app.Logger.Info("starting vignes server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("shutting down", "timeout", app.Config.Server.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("graceful shutdown did not complete", "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		app.Logger.Info("vignes server stopped gracefully")
		return nil
	}
}
