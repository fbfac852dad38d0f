package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/types"
)

// PreferencesHandler serves favorites and ratings. A nil store answers 503.
type PreferencesHandler struct {
	store       service.PreferenceStore
	requireAuth gin.HandlerFunc
}

func NewPreferencesHandler(store service.PreferenceStore, requireAuth gin.HandlerFunc) *PreferencesHandler {
	return &PreferencesHandler{store: store, requireAuth: requireAuth}
}

func (h *PreferencesHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	prefs.Use(h.requireAuth, h.requireStore)
	{
		prefs.GET("", h.Get)
		prefs.POST("/favorites/:id/toggle", h.ToggleFavorite)
		prefs.PUT("/ratings/:id", h.Rate)
	}
}

func (h *PreferencesHandler) requireStore(c *gin.Context) {
	if h.store == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Preferences are not available"})
		return
	}
	c.Next()
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	prefs, err := h.store.Get(c.Request.Context(), userID)
	if err != nil {
		logging.Error().Err(err).Msg("failed to load preferences")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferencesHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	favorite, err := h.store.ToggleFavorite(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		logging.Error().Err(err).Msg("failed to toggle favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": favorite})
}

func (h *PreferencesHandler) Rate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	err := h.store.SetRating(c.Request.Context(), userID, c.Param("id"), req.Rating)
	switch {
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
	case err != nil:
		logging.Error().Err(err).Msg("failed to save rating")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rating"})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true, "rating": req.Rating})
	}
}
