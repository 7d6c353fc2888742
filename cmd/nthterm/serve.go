package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/nthterm/nthterm"
	httpAdapter "github.com/nthterm/nthterm/internal/adapters/http"
	"github.com/nthterm/nthterm/internal/adapters/memory"
	redisAdapter "github.com/nthterm/nthterm/internal/adapters/redis"
	"github.com/nthterm/nthterm/internal/config"
	"github.com/nthterm/nthterm/internal/logging"
	"github.com/nthterm/nthterm/internal/metrics"
	"github.com/nthterm/nthterm/internal/presentation/tui"
	"github.com/nthterm/nthterm/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server with the interactive form",
	Long:  `Starts the sequence engine in server mode, exposing the interactive form, a JSON API, and prometheus metrics over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}

		logger := logging.NewJSON(slog.LevelInfo)

		collectors := metrics.New(prometheus.DefaultRegisterer)
		svc := nthterm.New(
			nthterm.WithMaxTerms(cfg.MaxTerms),
			nthterm.WithLogger(logger),
			nthterm.WithLifecycleHooks(collectors.Hooks()),
		)

		var sessions ports.SessionStore
		if cfg.Redis.Addr != "" {
			store := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(cfg.Redis.TTL.Std()))
			defer store.Close()
			sessions = store
			logger.Info("using redis session store", "addr", cfg.Redis.Addr)
		} else {
			sessions = memory.NewStore()
		}

		handler := httpAdapter.NewHandler(svc,
			httpAdapter.WithSessionStore(sessions),
			httpAdapter.WithDefaults(cfg.Defaults.Parameters()),
			httpAdapter.WithMetricsHandler(promhttp.Handler()),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		tui.PrintBanner()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting nthterm server", "addr", srv.Addr, "max_terms", cfg.MaxTerms)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "err", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "err", err)
				}
			}
			logger.Info("nthterm server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
