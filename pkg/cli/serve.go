package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	httpctrl "github.com/secmon-lab/threatcalc/pkg/controller/http"
	"github.com/secmon-lab/threatcalc/pkg/service/metrics"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var enableMetrics bool
	var concurrency int

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("THREATCALC_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Value:       true,
			Sources:     cli.EnvVars("THREATCALC_METRICS"),
			Destination: &enableMetrics,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Maximum number of scenarios of one batch request evaluated concurrently",
			Value:       8,
			Sources:     cli.EnvVars("THREATCALC_CONCURRENCY"),
			Destination: &concurrency,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP API server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ucOpts := []usecase.Option{
				usecase.WithBatchLimit(concurrency),
			}
			var httpOpts []httpctrl.Options

			if enableMetrics {
				collector := metrics.New()
				ucOpts = append(ucOpts, usecase.WithObserver(collector))
				httpOpts = append(httpOpts, httpctrl.WithMetrics(collector.Handler()))
			}

			uc := usecase.New(ucOpts...)
			httpOpts = append(httpOpts, httpctrl.WithScenarioUseCase(uc))

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc.Threat, uc.Complexity, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "metrics", enableMetrics)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logging.Default().Info("Context cancelled")
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logging.Default().Info("Server shutdown completed")
			return nil
		},
	}
}
