package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartchef/backend/internal/matching"
	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/types"
)

const defaultMaxTime = 90

type MatchHandler struct {
	matcher service.IMatchService
}

func NewMatchHandler(matcher service.IMatchService) *MatchHandler {
	return &MatchHandler{matcher: matcher}
}

func (h *MatchHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/match", h.Match)
	router.POST("/recipes/scale", h.Scale)
}

func (h *MatchHandler) Match(c *gin.Context) {
	var req types.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	diet, err := matching.ParseDiet(req.Diet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	difficulty, err := matching.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxTime := defaultMaxTime
	if req.MaxTime != nil {
		maxTime = *req.MaxTime
	}

	results, source := h.matcher.Match(c.Request.Context(), matching.MatchInput{
		Ingredients: matching.NormalizeIngredients(req.Ingredients),
		Diet:        diet,
		Difficulty:  difficulty,
		MaxTime:     maxTime,
	}, req.Servings)

	c.JSON(http.StatusOK, types.MatchResponse{Results: results, Source: source})
}

func (h *MatchHandler) Scale(c *gin.Context) {
	var req types.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.ScaleResponse{
		Ingredients: matching.Scale(req.Ingredients, req.BaseServings, req.TargetServings),
	})
}
