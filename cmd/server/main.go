package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/api"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/domain"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/platform/logger"
	"transit-mixer-scheduler/internal/platform/metrics"
	"transit-mixer-scheduler/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres profiles, Prometheus) behind ports and starts the HTTP server.
func main() {
	dotenv := config.LoadDotenv()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		l := logger.New("server", "info")
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.New("server", cfg.Log.Level)
	if !dotenv {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	if err := run(log, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log zerolog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Initialize schema and seed demo profiles on startup for local runs.
	if err := initAndSeed(conn, cfg); err != nil {
		return err
	}

	rec, err := metrics.NewPromRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	profiles := repositories.NewSiteProfileRepository(conn, cfg.DB.Driver)
	router := api.NewRouter(api.RouterDeps{
		Planner:  &services.Planner{Profiles: profiles, Metrics: rec, MaxTrips: cfg.Limits.MaxTrips},
		Profiles: profiles,
		Defaults: domain.Parameters{NumVehicles: cfg.Defaults.NumVehicles},
		Logger:   log,
		Metrics:  promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.DB.Driver).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func initAndSeed(conn *sql.DB, cfg *config.Config) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(cfg.SeedPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := repositories.SeedFromJSON(conn, repositories.DialectForDriver(cfg.DB.Driver), cfg.SeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
