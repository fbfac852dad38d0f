package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/model"
	"github.com/smartchef/backend/internal/types"
)

// ICatalogService reads the recipe catalog.
type ICatalogService interface {
	List(ctx context.Context, q types.RecipeQuery) types.RecipePage
	All(ctx context.Context) ([]matching.Recipe, string)
	Get(ctx context.Context, slug string) (matching.Recipe, error)
	BySlugs(ctx context.Context, slugs []string) ([]matching.Recipe, error)
}

// IMatchService ranks the catalog against a user's pantry.
type IMatchService interface {
	Match(ctx context.Context, input matching.MatchInput, servings int) ([]matching.MatchResult, string)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *model.User) (string, error)
}

// ISavedRecipeService keeps the recipes a user has saved.
type ISavedRecipeService interface {
	Save(ctx context.Context, userID uuid.UUID, slug string) error
	List(ctx context.Context, userID uuid.UUID) ([]matching.Recipe, error)
	Remove(ctx context.Context, userID uuid.UUID, slug string) (int64, error)
}

// IRecognitionService turns a photo into ingredient names.
type IRecognitionService interface {
	Recognize(ctx context.Context, photo Photo) (*RecognitionResult, error)
}

var (
	_ ICatalogService     = (*CatalogService)(nil)
	_ IMatchService       = (*MatchService)(nil)
	_ IAuthService        = (*AuthService)(nil)
	_ ISavedRecipeService = (*SavedRecipeService)(nil)
	_ IRecognitionService = (*RecognitionService)(nil)
	_ PreferenceStore     = (*RedisPreferenceStore)(nil)
	_ PhotoArchive        = (*S3PhotoArchive)(nil)
	_ VisionModel         = (*GeminiVision)(nil)
	_ RecipeSource        = (*CatalogService)(nil)
)
