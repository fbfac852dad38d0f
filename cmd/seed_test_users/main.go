package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/service"
)

const testPassword = "testpassword123"

var testUsers = []struct {
	name  string
	email string
}{
	{"John Doe", "john.doe@example.com"},
	{"Jane Smith", "jane.smith@example.com"},
	{"Demo Cook", "demo@smartchef.local"},
}

// seed_test_users registers a few accounts for local development. Existing
// accounts are left alone.
func main() {
	_ = godotenv.Load()
	logging.Init(logging.Config{Format: "console"})

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	if config.IsProduction() {
		logging.Fatal().Msg("refusing to seed test users in production")
	}

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate database")
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)
	ctx := context.Background()
	for _, u := range testUsers {
		_, _, err := auth.Register(ctx, u.name, u.email, testPassword)
		switch {
		case errors.Is(err, service.ErrUserExists):
			logging.Info().Str("email", u.email).Msg("user already exists")
		case err != nil:
			logging.Fatal().Err(err).Str("email", u.email).Msg("failed to create user")
		default:
			logging.Info().Str("email", u.email).Msg("created test user")
		}
	}

	logging.Info().Str("password", testPassword).Msg("test users ready")
}
