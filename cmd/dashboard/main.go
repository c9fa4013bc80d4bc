package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/app/dashboard/store"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/recovery"
	"github.com/farahtermos/lebanon-mumpsmeasles-dashboard/internal/pkg/regions"
)

type config struct {
	Addr            string        `env:"DASHBOARD_ADDR" envDefault:":8080"`
	DatasetPath     string        `env:"DATASET_PATH" envDefault:"MumpsLeb.csv"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal("failed to parse configuration", zap.Error(err))
	}

	st := store.New(cfg.DatasetPath, regions.Default(), logger)

	// Fail fast on an unloadable dataset instead of serving 500s.
	if _, err := st.Records(ctx); err != nil {
		logger.Fatal("initial dataset load failed",
			zap.String("path", cfg.DatasetPath), zap.Error(err))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: corsMiddleware.Handler(dashboard.NewMux(st, logger)),
	}

	go recovery.WithRecoverCallback(logger, "http-server", func() {
		logger.Info("dashboard listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}, func(err error) {
		logger.Error("http server crashed, dashboard unavailable", zap.Error(err))
		cancel()
	})()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
