package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/smartchef/backend/internal/matching"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	b, err := jsonBytes(value)
	if err != nil || b == nil {
		*a = JSONBStringArray{}
		return err
	}
	return json.Unmarshal(b, a)
}

// IngredientList stores a recipe's ingredient lines as a JSONB array of
// {name, quantity, unit} objects.
type IngredientList []matching.Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IngredientList) Scan(value interface{}) error {
	b, err := jsonBytes(value)
	if err != nil || b == nil {
		*l = IngredientList{}
		return err
	}
	return json.Unmarshal(b, l)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", value)
	}
}

// Recipe is a catalog row.
type Recipe struct {
	ID            uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `gorm:"index" json:"updated_at"`
	Slug          string           `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Cuisine       string           `gorm:"size:50;index" json:"cuisine"`
	Diet          string           `gorm:"size:20;not null;default:'none'" json:"diet"`
	Difficulty    string           `gorm:"size:10;not null;default:'easy'" json:"difficulty"`
	TimeMinutes   int              `gorm:"not null" json:"time_minutes"`
	Servings      int              `gorm:"not null;default:1" json:"servings"`
	Ingredients   IngredientList   `gorm:"type:jsonb;not null" json:"ingredients"`
	Steps         JSONBStringArray `gorm:"type:jsonb;not null" json:"steps"`
	Tags          JSONBStringArray `gorm:"type:jsonb" json:"tags"`
	Calories      float64          `gorm:"type:float" json:"calories"`
	Protein       float64          `gorm:"type:float" json:"protein"`
	Carbs         float64          `gorm:"type:float" json:"carbs"`
	Fat           float64          `gorm:"type:float" json:"fat"`
	RatingAverage float64          `gorm:"type:float;not null;default:0" json:"rating_average"`
	Embedding     pgvector.Vector  `gorm:"type:vector(16)" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeSave refreshes the search embedding from the recipe's text.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	r.Embedding = GenerateEmbedding(r.SearchText())
	return nil
}

// SearchText is the text embedded for free-text search ranking: name,
// cuisine, tags and ingredient names.
func (r *Recipe) SearchText() string {
	parts := []string{r.Name, r.Cuisine}
	parts = append(parts, r.Tags...)
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Name)
	}
	return strings.Join(parts, " ")
}

// ToMatching converts the row into the matcher's catalog type. The slug is
// the recipe's public identifier.
func (r *Recipe) ToMatching() matching.Recipe {
	out := matching.Recipe{
		ID:          r.Slug,
		Slug:        r.Slug,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Diet:        matching.Diet(r.Diet),
		Difficulty:  matching.Difficulty(r.Difficulty),
		Time:        r.TimeMinutes,
		Servings:    r.Servings,
		Ingredients: append([]matching.Ingredient{}, r.Ingredients...),
		Steps:       append([]string{}, r.Steps...),
		Nutrition: matching.Nutrition{
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
		},
		Rating: r.RatingAverage,
	}
	if len(r.Tags) > 0 {
		out.Tags = append([]string{}, r.Tags...)
	}
	return out
}

// RecipeFromMatching builds a row from a catalog recipe. The slug falls
// back to the recipe ID.
func RecipeFromMatching(m matching.Recipe) Recipe {
	slug := m.Slug
	if slug == "" {
		slug = m.ID
	}
	return Recipe{
		Slug:          slug,
		Name:          m.Name,
		Cuisine:       m.Cuisine,
		Diet:          string(m.Diet),
		Difficulty:    string(m.Difficulty),
		TimeMinutes:   m.Time,
		Servings:      m.Servings,
		Ingredients:   append(IngredientList{}, m.Ingredients...),
		Steps:         append(JSONBStringArray{}, m.Steps...),
		Tags:          append(JSONBStringArray{}, m.Tags...),
		Calories:      m.Nutrition.Calories,
		Protein:       m.Nutrition.Protein,
		Carbs:         m.Nutrition.Carbs,
		Fat:           m.Nutrition.Fat,
		RatingAverage: m.Rating,
	}
}
