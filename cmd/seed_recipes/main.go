package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/model"
	"github.com/smartchef/backend/internal/service"
)

// seed_recipes copies the built-in catalog into the recipe database,
// updating rows that already exist by slug.
func main() {
	migrate := flag.Bool("migrate", true, "Run gorm auto-migration before seeding")
	flag.Parse()

	_ = godotenv.Load()
	logging.Init(logging.Config{Format: "console"})

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	if *migrate {
		if err := database.AutoMigrate(db); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	ctx := context.Background()
	recipes := service.StaticRecipes()
	for _, r := range recipes {
		row := model.RecipeFromMatching(r)
		err := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "cuisine", "diet", "difficulty", "time_minutes", "servings",
					"ingredients", "steps", "tags", "calories", "protein", "carbs", "fat",
					"rating_average", "embedding", "updated_at",
				}),
			}).
			Create(&row).Error
		if err != nil {
			logging.Fatal().Err(err).Str("slug", r.Slug).Msg("failed to seed recipe")
		}
		logging.Info().Str("slug", r.Slug).Msg("seeded recipe")
	}

	logging.Info().Int("count", len(recipes)).Msg("recipe catalog seeded")
}
