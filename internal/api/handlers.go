package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartchef/backend/internal/database"
	"github.com/smartchef/backend/internal/middleware"
	"github.com/smartchef/backend/internal/service"
)

// Dependencies are the services behind the HTTP routes. Preferences and
// RecognitionLimiter may be nil when Redis is not configured; DB may be nil
// when the service runs on the built-in catalog.
type Dependencies struct {
	DB                 *gorm.DB
	Catalog            service.ICatalogService
	Matcher            service.IMatchService
	Auth               service.IAuthService
	Saved              service.ISavedRecipeService
	Recognizer         service.IRecognitionService
	Preferences        service.PreferenceStore
	RecognitionLimiter *middleware.RateLimiter
}

// HealthHandler reports liveness and the state of the recipe database.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "not configured"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, h.db); err != nil {
			dbStatus = "unreachable"
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "SmartChef API is running",
		"database": dbStatus,
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	health := NewHealthHandler(deps.DB)
	router.GET("/health", health.HealthCheck)
	router.GET("/api/health", health.HealthCheck)

	requireAuth := middleware.AuthMiddleware(deps.Auth)
	limiter := deps.RecognitionLimiter
	if limiter == nil {
		limiter = middleware.NewRecognitionRateLimiter(nil)
	}

	v1 := router.Group("/api/v1")
	NewAuthHandler(deps.Auth).RegisterRoutes(v1)
	NewMatchHandler(deps.Matcher).RegisterRoutes(v1)
	NewRecipeHandler(deps.Catalog).RegisterRoutes(v1)
	NewRecognizeHandler(deps.Recognizer, requireAuth, limiter).RegisterRoutes(v1)
	NewSavedHandler(deps.Saved, requireAuth).RegisterRoutes(v1)
	NewPreferencesHandler(deps.Preferences, requireAuth).RegisterRoutes(v1)
}

// currentUser writes a 401 when the request carries no authenticated user.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}
