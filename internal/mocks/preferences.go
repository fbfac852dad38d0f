package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/smartchef/backend/internal/types"
)

// MockPreferenceStore is a mock implementation of service.PreferenceStore
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) Get(ctx context.Context, userID uuid.UUID) (*types.Preferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Preferences), args.Error(1)
}

func (m *MockPreferenceStore) ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceStore) SetRating(ctx context.Context, userID uuid.UUID, recipeID string, rating int) error {
	args := m.Called(ctx, userID, recipeID, rating)
	return args.Error(0)
}
