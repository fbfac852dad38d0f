package matching

import (
	"fmt"
	"strings"
)

// Diet is the dietary classification of a recipe.
type Diet string

const (
	DietNone       Diet = "none"
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietGlutenFree Diet = "gluten-free"
)

// Difficulty is how hard a recipe is to prepare. DifficultyAny is only
// meaningful as a match filter.
type Difficulty string

const (
	DifficultyAny    Difficulty = "any"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDiet validates a diet filter. An empty value means no filter.
func ParseDiet(s string) (Diet, error) {
	switch d := Diet(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DietNone, nil
	case DietNone, DietVegetarian, DietVegan, DietGlutenFree:
		return d, nil
	default:
		return "", fmt.Errorf("invalid diet %q", s)
	}
}

// ParseDifficulty validates a difficulty filter. An empty value means any.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyAny, nil
	case DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q", s)
	}
}

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Nutrition holds per base-serving macros.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Recipe is a read-only catalog entry.
type Recipe struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Name        string       `json:"name"`
	Cuisine     string       `json:"cuisine"`
	Diet        Diet         `json:"diet"`
	Difficulty  Difficulty   `json:"difficulty"`
	Time        int          `json:"time"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Nutrition   Nutrition    `json:"nutrition"`
	Tags        []string     `json:"tags,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
}

// MatchInput carries a user's available ingredients and preferences.
type MatchInput struct {
	Ingredients []string
	Diet        Diet
	Difficulty  Difficulty
	MaxTime     int
}

// MatchResult is an admitted recipe with its score and suggested
// substitutions for missing ingredients.
type MatchResult struct {
	Recipe
	Score         float64             `json:"score"`
	Substitutions map[string][]string `json:"substitutions"`
}
