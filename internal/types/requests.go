package types

import (
	"github.com/smartchef/backend/internal/matching"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MatchRequest is the body of POST /recipes/match. MaxTime defaults to 90
// minutes when omitted; Servings > 0 rescales every result.
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
	Diet        string   `json:"diet"`
	Difficulty  string   `json:"difficulty"`
	MaxTime     *int     `json:"maxTime" binding:"omitempty,min=0"`
	Servings    int      `json:"servings" binding:"min=0"`
}

type ScaleRequest struct {
	Ingredients    []matching.Ingredient `json:"ingredients" binding:"required"`
	BaseServings   int                   `json:"baseServings"`
	TargetServings int                   `json:"targetServings" binding:"required,gt=0"`
}

type SaveRecipeRequest struct {
	Slug string `json:"slug" binding:"required,max=120"`
}

type RateRecipeRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RecipeQuery carries the list filters of GET /recipes. Nil pointers mean
// "not filtered".
type RecipeQuery struct {
	Page        int
	PageSize    int
	Search      string
	Ingredients []string
	Difficulty  string
	Cuisine     string
	MaxTime     *int
	MinRating   *float64
	Vegetarian  *bool
	Vegan       *bool
	GlutenFree  *bool
	DairyFree   *bool
	NutFree     *bool
}
