package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/metrics"
	"github.com/smartchef/backend/internal/model"
	"github.com/smartchef/backend/internal/types"
)

// Dietary tags matched by the dairyFree and nutFree list filters.
const (
	TagDairyFree = "dairy-free"
	TagNutFree   = "nut-free"
)

// Catalog sources reported to clients.
const (
	SourceDatabase       = "database"
	SourceStatic         = "static"
	SourceFallbackStatic = "fallback-static"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
	// MaxPage keeps (page-1)*pageSize inside int.
	MaxPage = math.MaxInt / MaxPageSize

	fallbackMessage = "Failed to fetch recipes from database. Returned static data."
)

var ErrRecipeNotFound = errors.New("recipe not found")

// CatalogService reads recipes from the database, or from the built-in
// catalog when no database is configured. Database failures never reach
// the caller: reads degrade to the built-in catalog.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a catalog backed by db. A nil db serves the
// built-in catalog only.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// NormalizePage clamps page to 1..MaxPage and pageSize to 1..50,
// defaulting pageSize to 20 when unset.
func NormalizePage(page, pageSize int) (int, int) {
	page = min(MaxPage, max(1, page))
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return page, min(MaxPageSize, max(1, pageSize))
}

// TotalPages is ceil(total/pageSize), never less than 1.
func TotalPages(total int64, pageSize int) int {
	return max(1, int(math.Ceil(float64(total)/float64(pageSize))))
}

// List returns one filtered page of recipes.
func (s *CatalogService) List(ctx context.Context, q types.RecipeQuery) types.RecipePage {
	q.Page, q.PageSize = NormalizePage(q.Page, q.PageSize)

	if s.db == nil {
		metrics.CatalogLoads.WithLabelValues(SourceStatic).Inc()
		return s.staticPage(q, SourceStatic)
	}

	page, err := s.dbPage(ctx, q)
	if err != nil {
		logging.Error().Err(err).Msg("recipe list query failed, serving static catalog")
		metrics.CatalogLoads.WithLabelValues(SourceFallbackStatic).Inc()
		out := s.staticPage(q, SourceFallbackStatic)
		out.Error = fallbackMessage
		return out
	}
	metrics.CatalogLoads.WithLabelValues(SourceDatabase).Inc()
	return page
}

// All returns the whole catalog in list order, and the source it came from.
func (s *CatalogService) All(ctx context.Context) ([]matching.Recipe, string) {
	if s.db == nil {
		metrics.CatalogLoads.WithLabelValues(SourceStatic).Inc()
		return StaticRecipes(), SourceStatic
	}

	var rows []model.Recipe
	err := s.db.WithContext(ctx).
		Order("updated_at DESC").Order("name ASC").
		Find(&rows).Error
	if err != nil {
		logging.Error().Err(err).Msg("recipe catalog query failed, serving static catalog")
		metrics.CatalogLoads.WithLabelValues(SourceFallbackStatic).Inc()
		return StaticRecipes(), SourceFallbackStatic
	}

	metrics.CatalogLoads.WithLabelValues(SourceDatabase).Inc()
	return toMatching(rows), SourceDatabase
}

// Get returns the recipe with the given slug.
func (s *CatalogService) Get(ctx context.Context, slug string) (matching.Recipe, error) {
	if s.db != nil {
		var row model.Recipe
		err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
		switch {
		case err == nil:
			return row.ToMatching(), nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return matching.Recipe{}, ErrRecipeNotFound
		default:
			logging.Error().Err(err).Str("slug", slug).Msg("recipe lookup failed, using static catalog")
		}
	}

	for _, r := range StaticRecipes() {
		if r.Slug == slug {
			return r, nil
		}
	}
	return matching.Recipe{}, ErrRecipeNotFound
}

// BySlugs returns the recipes for the given slugs in the order given.
// Unknown slugs are skipped.
func (s *CatalogService) BySlugs(ctx context.Context, slugs []string) ([]matching.Recipe, error) {
	if len(slugs) == 0 {
		return []matching.Recipe{}, nil
	}

	byslug := make(map[string]matching.Recipe, len(slugs))
	if s.db != nil {
		var rows []model.Recipe
		if err := s.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load recipes: %w", err)
		}
		for i := range rows {
			byslug[rows[i].Slug] = rows[i].ToMatching()
		}
	} else {
		for _, r := range StaticRecipes() {
			byslug[r.Slug] = r
		}
	}

	out := make([]matching.Recipe, 0, len(slugs))
	for _, slug := range slugs {
		if r, ok := byslug[slug]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *CatalogService) dbPage(ctx context.Context, q types.RecipeQuery) (types.RecipePage, error) {
	var total int64
	if err := s.filtered(ctx, q).Count(&total).Error; err != nil {
		return types.RecipePage{}, fmt.Errorf("failed to count recipes: %w", err)
	}

	query := s.filtered(ctx, q)
	if q.Search != "" && s.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "embedding <-> ?::vector",
			Vars: []interface{}{model.GenerateEmbedding(q.Search)},
		}})
	}

	var rows []model.Recipe
	err := query.
		Order("updated_at DESC").Order("name ASC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&rows).Error
	if err != nil {
		return types.RecipePage{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	return types.RecipePage{
		Recipes: toMatching(rows),
		Meta:    pageMeta(total, q),
		Source:  SourceDatabase,
	}, nil
}

// filtered builds a fresh query with every filter in q applied.
func (s *CatalogService) filtered(ctx context.Context, q types.RecipeQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Recipe{})
	postgres := s.db.Dialector.Name() == "postgres"

	if q.Search != "" {
		like := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		tx = tx.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(cuisine) LIKE ? ESCAPE '\' OR LOWER(slug) LIKE ? ESCAPE '\' OR LOWER(CAST(tags AS TEXT)) LIKE ? ESCAPE '\')`,
			like, like, like, like,
		)
	}

	for _, name := range q.Ingredients {
		if postgres {
			tx = tx.Where("EXISTS (SELECT 1 FROM jsonb_array_elements(ingredients) AS i WHERE LOWER(i->>'name') = ?)", strings.ToLower(name))
		} else {
			tx = tx.Where("EXISTS (SELECT 1 FROM json_each(recipes.ingredients) AS i WHERE LOWER(json_extract(i.value, '$.name')) = ?)", strings.ToLower(name))
		}
	}

	if q.Difficulty != "" {
		tx = tx.Where("difficulty = ?", strings.ToLower(q.Difficulty))
	}
	if q.Cuisine != "" {
		tx = tx.Where("LOWER(cuisine) = ?", strings.ToLower(q.Cuisine))
	}
	if q.MaxTime != nil {
		tx = tx.Where("time_minutes <= ?", *q.MaxTime)
	}
	if q.MinRating != nil {
		tx = tx.Where("rating_average >= ?", *q.MinRating)
	}

	vegetarian := []string{string(matching.DietVegetarian), string(matching.DietVegan)}
	if q.Vegetarian != nil {
		if *q.Vegetarian {
			tx = tx.Where("diet IN ?", vegetarian)
		} else {
			tx = tx.Where("diet NOT IN ?", vegetarian)
		}
	}
	if q.Vegan != nil {
		tx = whereDiet(tx, matching.DietVegan, *q.Vegan)
	}
	if q.GlutenFree != nil {
		tx = whereDiet(tx, matching.DietGlutenFree, *q.GlutenFree)
	}
	if q.DairyFree != nil {
		tx = whereTag(tx, TagDairyFree, *q.DairyFree)
	}
	if q.NutFree != nil {
		tx = whereTag(tx, TagNutFree, *q.NutFree)
	}

	return tx
}

// whereTag matches the quoted tag inside the JSON tags column.
func whereTag(tx *gorm.DB, tag string, want bool) *gorm.DB {
	like := `%"` + escapeLike(tag) + `"%`
	if want {
		return tx.Where(`COALESCE(CAST(tags AS TEXT), '') LIKE ? ESCAPE '\'`, like)
	}
	return tx.Where(`COALESCE(CAST(tags AS TEXT), '') NOT LIKE ? ESCAPE '\'`, like)
}

func whereDiet(tx *gorm.DB, diet matching.Diet, want bool) *gorm.DB {
	if want {
		return tx.Where("diet = ?", string(diet))
	}
	return tx.Where("diet <> ?", string(diet))
}

func (s *CatalogService) staticPage(q types.RecipeQuery, source string) types.RecipePage {
	all := filterRecipes(StaticRecipes(), q)
	total := int64(len(all))

	start := min(len(all), (q.Page-1)*q.PageSize)
	end := min(len(all), start+q.PageSize)

	return types.RecipePage{
		Recipes: all[start:end],
		Meta:    pageMeta(total, q),
		Source:  source,
	}
}

// filterRecipes applies q's filters in memory with the same semantics as
// the database query.
func filterRecipes(recipes []matching.Recipe, q types.RecipeQuery) []matching.Recipe {
	out := make([]matching.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if recipeMatchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func recipeMatchesQuery(r matching.Recipe, q types.RecipeQuery) bool {
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		hit := strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Cuisine), needle) ||
			strings.Contains(strings.ToLower(r.Slug), needle)
		for _, tag := range r.Tags {
			hit = hit || strings.Contains(strings.ToLower(tag), needle)
		}
		if !hit {
			return false
		}
	}

	if len(q.Ingredients) > 0 {
		have := make(map[string]struct{}, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			have[strings.ToLower(ing.Name)] = struct{}{}
		}
		for _, name := range q.Ingredients {
			if _, ok := have[strings.ToLower(name)]; !ok {
				return false
			}
		}
	}

	if q.Difficulty != "" && string(r.Difficulty) != strings.ToLower(q.Difficulty) {
		return false
	}
	if q.Cuisine != "" && !strings.EqualFold(r.Cuisine, q.Cuisine) {
		return false
	}
	if q.MaxTime != nil && r.Time > *q.MaxTime {
		return false
	}
	if q.MinRating != nil && r.Rating < *q.MinRating {
		return false
	}

	vegetarian := r.Diet == matching.DietVegetarian || r.Diet == matching.DietVegan
	if q.Vegetarian != nil && vegetarian != *q.Vegetarian {
		return false
	}
	if q.Vegan != nil && (r.Diet == matching.DietVegan) != *q.Vegan {
		return false
	}
	if q.GlutenFree != nil && (r.Diet == matching.DietGlutenFree) != *q.GlutenFree {
		return false
	}
	if q.DairyFree != nil && hasTag(r, TagDairyFree) != *q.DairyFree {
		return false
	}
	if q.NutFree != nil && hasTag(r, TagNutFree) != *q.NutFree {
		return false
	}
	return true
}

func hasTag(r matching.Recipe, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func pageMeta(total int64, q types.RecipeQuery) types.PageMeta {
	return types.PageMeta{
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: TotalPages(total, q.PageSize),
	}
}

func toMatching(rows []model.Recipe) []matching.Recipe {
	out := make([]matching.Recipe, len(rows))
	for i := range rows {
		out[i] = rows[i].ToMatching()
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
