package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/types"
)

type SavedHandler struct {
	saved       service.ISavedRecipeService
	requireAuth gin.HandlerFunc
}

func NewSavedHandler(saved service.ISavedRecipeService, requireAuth gin.HandlerFunc) *SavedHandler {
	return &SavedHandler{saved: saved, requireAuth: requireAuth}
}

func (h *SavedHandler) RegisterRoutes(router *gin.RouterGroup) {
	saved := router.Group("/saved")
	saved.Use(h.requireAuth)
	{
		saved.GET("", h.List)
		saved.POST("", h.Save)
		saved.DELETE("/:slug", h.Remove)
	}
}

func (h *SavedHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recipes, err := h.saved.List(c.Request.Context(), userID)
	if err != nil {
		h.storeError(c, err, "list")
		return
	}

	c.JSON(http.StatusOK, types.SavedListResponse{
		Recipes: recipes,
		Meta:    types.SavedMeta{Count: len(recipes)},
	})
}

func (h *SavedHandler) Save(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Slug) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if err := h.saved.Save(c.Request.Context(), userID, slug); err != nil {
		h.storeError(c, err, "save")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "slug": slug})
}

func (h *SavedHandler) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := h.saved.Remove(c.Request.Context(), userID, c.Param("slug"))
	if err != nil {
		h.storeError(c, err, "remove")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deletedCount": deleted})
}

func (h *SavedHandler) storeError(c *gin.Context, err error, op string) {
	if errors.Is(err, service.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Saved recipes are not available"})
		return
	}
	logging.Error().Err(err).Str("op", op).Msg("saved recipes request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
