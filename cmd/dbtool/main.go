package main

import (
	"database/sql"
	"os"

	"github.com/rs/zerolog"

	"transit-mixer-scheduler/internal/adapters/repositories"
	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/platform/db"
	"transit-mixer-scheduler/internal/platform/logger"
)

func main() {
	dotenv := config.LoadDotenv()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		l := logger.New("dbtool", "info")
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.New("dbtool", cfg.Log.Level)
	if !dotenv {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := initAndSeed(log, conn, repositories.DialectForDriver(cfg.DB.Driver), cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("init and seed")
	}
}

func initAndSeed(log zerolog.Logger, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Info().Msg("initializing database schema")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Info().Msg("schema ready")

	log.Info().Str("seed_path", seedPath).Msg("seeding site profiles")
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return err
	}
	log.Info().Msg("seeding complete")

	return nil
}
