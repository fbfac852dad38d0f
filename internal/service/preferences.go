package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smartchef/backend/internal/types"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// PreferenceStore keeps per-user favorites and star ratings.
type PreferenceStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*types.Preferences, error)
	ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (bool, error)
	SetRating(ctx context.Context, userID uuid.UUID, recipeID string, rating int) error
}

// RedisPreferenceStore keeps favorites in a sorted set scored by the time
// they were added, and ratings in a hash.
type RedisPreferenceStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client, now: time.Now}
}

func favoritesKey(userID uuid.UUID) string { return "smartchef:favorites:" + userID.String() }
func ratingsKey(userID uuid.UUID) string   { return "smartchef:ratings:" + userID.String() }

// Get returns favorites in the order they were added and all ratings.
func (s *RedisPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*types.Preferences, error) {
	pipe := s.client.Pipeline()
	favCmd := pipe.ZRange(ctx, favoritesKey(userID), 0, -1)
	ratingsCmd := pipe.HGetAll(ctx, ratingsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := &types.Preferences{
		Favorites: favCmd.Val(),
		Ratings:   make(map[string]int),
	}
	if prefs.Favorites == nil {
		prefs.Favorites = []string{}
	}
	for id, raw := range ratingsCmd.Val() {
		stars, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		prefs.Ratings[id] = stars
	}
	return prefs, nil
}

// ToggleFavorite adds recipeID to the user's favorites, or removes it if
// already present. It reports whether the recipe is now a favorite.
func (s *RedisPreferenceStore) ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (bool, error) {
	key := favoritesKey(userID)
	added, err := s.client.ZAddNX(ctx, key, redis.Z{
		Score:  float64(s.now().UnixNano()),
		Member: recipeID,
	}).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	if added == 1 {
		return true, nil
	}

	if err := s.client.ZRem(ctx, key, recipeID).Err(); err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return false, nil
}

func (s *RedisPreferenceStore) SetRating(ctx context.Context, userID uuid.UUID, recipeID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if err := s.client.HSet(ctx, ratingsKey(userID), recipeID, rating).Err(); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}
