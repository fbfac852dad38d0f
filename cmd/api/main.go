package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/server"
)

func main() {
	if !config.IsProduction() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			logging.Warn().Err(err).Msg("failed to load .env file")
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Str("environment", string(config.GetEnvironment())).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := server.Bootstrap(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize services")
	}
	defer cleanup()

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			logging.Error().Err(err).Msg("server error")
		}
		return
	case <-ctx.Done():
		logging.Info().Msg("shutting down server")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logging.Error().Err(err).Msg("server shutdown error")
		return
	}
	logging.Info().Msg("server stopped")
}
