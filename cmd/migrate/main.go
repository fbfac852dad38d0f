package main

import (
	"database/sql"
	"errors"
	"flag"
	"os"

	_ "github.com/lib/pq"

	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory holding the .sql migrations")
	flag.Parse()

	logging.Init(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: "console"})

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logging.Fatal().Msg("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logging.Fatal().Err(err).Msg("failed to reach database")
	}

	if *rollback {
		name, err := database.RollbackLast(db, *dir)
		if errors.Is(err, database.ErrNoMigrations) {
			logging.Info().Msg("no migrations to roll back")
			return
		}
		if err != nil {
			logging.Fatal().Err(err).Msg("rollback failed")
		}
		logging.Info().Str("migration", name).Msg("successfully rolled back migration")
		return
	}

	applied, err := database.RunMigrations(db, *dir)
	if err != nil {
		logging.Fatal().Err(err).Strs("applied", applied).Msg("migration failed")
	}
	logging.Info().Int("count", len(applied)).Msg("all migrations applied")
}
