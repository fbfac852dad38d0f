package types

import (
	"github.com/google/uuid"

	"github.com/smartchef/backend/internal/matching"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// RecipePage is one page of the catalog. Source is database, static or
// fallback-static; Error is set only for fallback-static.
type RecipePage struct {
	Recipes []matching.Recipe `json:"recipes"`
	Meta    PageMeta          `json:"meta"`
	Source  string            `json:"source"`
	Error   string            `json:"error,omitempty"`
}

type MatchResponse struct {
	Results []matching.MatchResult `json:"results"`
	Source  string                 `json:"source"`
}

type ScaleResponse struct {
	Ingredients []matching.Ingredient `json:"ingredients"`
}

type RecognizeResponse struct {
	Ingredients []string `json:"ingredients"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
}

type SavedMeta struct {
	Count int `json:"count"`
}

// SavedListResponse lists a user's saved recipes, most recently saved first.
type SavedListResponse struct {
	Recipes []matching.Recipe `json:"recipes"`
	Meta    SavedMeta         `json:"meta"`
}

type Preferences struct {
	Favorites []string       `json:"favorites"`
	Ratings   map[string]int `json:"ratings"`
}
