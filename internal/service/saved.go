package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/model"
)

// ErrStoreUnavailable is returned by stores that need a database when none
// is configured.
var ErrStoreUnavailable = errors.New("store unavailable")

const savedListLimit = 50

// SavedRecipeService keeps each user's saved recipe slugs.
type SavedRecipeService struct {
	db      *gorm.DB
	catalog *CatalogService
	now     func() time.Time
}

func NewSavedRecipeService(db *gorm.DB, catalog *CatalogService) *SavedRecipeService {
	return &SavedRecipeService{db: db, catalog: catalog, now: time.Now}
}

// Save records slug for the user. Saving an already saved slug is a no-op
// and keeps the original save time.
func (s *SavedRecipeService) Save(ctx context.Context, userID uuid.UUID, slug string) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}

	row := model.SavedRecipe{UserID: userID, Slug: slug, CreatedAt: s.now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "slug"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// Slugs returns the user's saved slugs, newest first, at most 50.
func (s *SavedRecipeService) Slugs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	var slugs []string
	err := s.db.WithContext(ctx).
		Model(&model.SavedRecipe{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(savedListLimit).
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}
	return slugs, nil
}

// List returns the user's saved recipes in save order, newest first. Saved
// slugs missing from the catalog are skipped.
func (s *SavedRecipeService) List(ctx context.Context, userID uuid.UUID) ([]matching.Recipe, error) {
	slugs, err := s.Slugs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.BySlugs(ctx, slugs)
}

// Remove deletes a saved slug and reports how many rows were removed.
func (s *SavedRecipeService) Remove(ctx context.Context, userID uuid.UUID, slug string) (int64, error) {
	if s.db == nil {
		return 0, ErrStoreUnavailable
	}

	res := s.db.WithContext(ctx).
		Where("user_id = ? AND slug = ?", userID, slug).
		Delete(&model.SavedRecipe{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to remove saved recipe: %w", res.Error)
	}
	return res.RowsAffected, nil
}
