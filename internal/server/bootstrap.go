package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/api"
	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/middleware"
	"github.com/smartchef/backend/internal/service"
)

// Bootstrap connects every configured backend and wires the services.
// Missing optional backends degrade features instead of failing: no
// database serves the built-in catalog, no Redis disables preferences and
// rate limiting, no S3 bucket skips photo archiving and no Gemini key makes
// recognition answer "API key not configured". The returned cleanup
// closes whatever was opened.
func Bootstrap(ctx context.Context, cfg *config.Config) (api.Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return api.Dependencies{}, cleanup, err
	}
	if db != nil {
		closers = append(closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
	}

	var redisClient *redis.Client
	if cfg.HasRedis() {
		redisClient, err = database.NewRedisClient(ctx, cfg)
		if err != nil {
			logging.Warn().Err(err).Msg("redis unavailable, preferences and rate limiting disabled")
			redisClient = nil
		} else {
			closers = append(closers, func() { _ = redisClient.Close() })
		}
	}

	var archive service.PhotoArchive
	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logging.Warn().Err(err).Msg("s3 unavailable, photo archiving disabled")
	} else if s3cfg != nil {
		archive = service.NewS3PhotoArchive(s3cfg)
	}

	var vision service.VisionModel
	if cfg.GeminiAPIKey != "" {
		gemini, err := service.NewGeminiVision(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logging.Warn().Err(err).Msg("gemini unavailable, ingredient recognition disabled")
		} else {
			vision = gemini
			closers = append(closers, func() { _ = gemini.Close() })
		}
	} else {
		logging.Warn().Msg("GEMINI_API_KEY not set, ingredient recognition disabled")
	}

	catalog := service.NewCatalogService(db)
	deps := api.Dependencies{
		DB:                 db,
		Catalog:            catalog,
		Matcher:            service.NewMatchService(catalog),
		Auth:               service.NewAuthService(db, cfg.JWTSecret),
		Saved:              service.NewSavedRecipeService(db, catalog),
		Recognizer:         service.NewRecognitionService(vision, archive),
		RecognitionLimiter: middleware.NewRecognitionRateLimiter(redisClient),
	}
	if redisClient != nil {
		deps.Preferences = service.NewRedisPreferenceStore(redisClient)
	}

	return deps, cleanup, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.New(cfg)
	if errors.Is(err, database.ErrNotConfigured) {
		logging.Warn().Msg("no database configured, serving the built-in recipe catalog")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logging.Info().Msg("database schema migrated")
	}
	return db, nil
}
