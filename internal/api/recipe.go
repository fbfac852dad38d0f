package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/types"
)

type RecipeHandler struct {
	catalog service.ICatalogService
}

func NewRecipeHandler(catalog service.ICatalogService) *RecipeHandler {
	return &RecipeHandler{catalog: catalog}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:slug", h.GetRecipe)
	}
}

// ListRecipes serves one page of the catalog. The response is always 200;
// a failing database is reported through source and error.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List(c.Request.Context(), parseRecipeQuery(c)))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.catalog.Get(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// parseRecipeQuery reads list filters leniently: unparsable values are
// treated as absent.
func parseRecipeQuery(c *gin.Context) types.RecipeQuery {
	q := types.RecipeQuery{
		Search:     strings.TrimSpace(c.Query("search")),
		Difficulty: strings.TrimSpace(c.Query("difficulty")),
		Cuisine:    strings.TrimSpace(c.Query("cuisine")),
		MaxTime:    queryInt(c, "maxTime"),
		MinRating:  queryFloat(c, "minRating"),
		Vegetarian: queryBool(c, "vegetarian"),
		Vegan:      queryBool(c, "vegan"),
		GlutenFree: queryBool(c, "glutenFree"),
		DairyFree:  queryBool(c, "dairyFree"),
		NutFree:    queryBool(c, "nutFree"),
	}
	if p := queryInt(c, "page"); p != nil {
		q.Page = *p
	}
	if ps := queryInt(c, "pageSize"); ps != nil {
		q.PageSize = *ps
	}
	for _, name := range strings.Split(c.Query("ingredients"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			q.Ingredients = append(q.Ingredients, name)
		}
	}
	return q
}

func queryInt(c *gin.Context, key string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(c *gin.Context, key string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Query(key)), 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, key string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "true":
		v = true
	case "false":
		v = false
	default:
		return nil
	}
	return &v
}
