package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/backend/internal/testhelpers"
)

func TestRedisPreferenceStore(t *testing.T) {
	store := NewRedisPreferenceStore(testhelpers.SetupTestRedis(t))
	clock := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	ctx := context.Background()
	user := uuid.New()

	t.Run("empty", func(t *testing.T) {
		prefs, err := store.Get(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, []string{}, prefs.Favorites)
		assert.Empty(t, prefs.Ratings)
	})

	t.Run("toggle favorites", func(t *testing.T) {
		on, err := store.ToggleFavorite(ctx, user, "pancakes")
		require.NoError(t, err)
		assert.True(t, on)

		on, err = store.ToggleFavorite(ctx, user, "quinoa-salad")
		require.NoError(t, err)
		assert.True(t, on)

		prefs, err := store.Get(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, []string{"pancakes", "quinoa-salad"}, prefs.Favorites)

		on, err = store.ToggleFavorite(ctx, user, "pancakes")
		require.NoError(t, err)
		assert.False(t, on)

		prefs, err = store.Get(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, []string{"quinoa-salad"}, prefs.Favorites)
	})

	t.Run("ratings", func(t *testing.T) {
		require.NoError(t, store.SetRating(ctx, user, "pancakes", 4))
		require.NoError(t, store.SetRating(ctx, user, "pancakes", 5))
		require.NoError(t, store.SetRating(ctx, user, "beef-stir-fry", 1))

		prefs, err := store.Get(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"pancakes": 5, "beef-stir-fry": 1}, prefs.Ratings)

		assert.ErrorIs(t, store.SetRating(ctx, user, "pancakes", 0), ErrInvalidRating)
		assert.ErrorIs(t, store.SetRating(ctx, user, "pancakes", 6), ErrInvalidRating)
	})

	t.Run("per user", func(t *testing.T) {
		prefs, err := store.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, prefs.Favorites)
		assert.Empty(t, prefs.Ratings)
	})
}
