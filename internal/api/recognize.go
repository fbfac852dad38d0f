package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smartchef/backend/internal/logging"
	"github.com/smartchef/backend/internal/middleware"
	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/types"
)

const maxPhotoBytes = 10 << 20

type RecognizeHandler struct {
	recognizer  service.IRecognitionService
	requireAuth gin.HandlerFunc
	limiter     *middleware.RateLimiter
}

func NewRecognizeHandler(recognizer service.IRecognitionService, requireAuth gin.HandlerFunc, limiter *middleware.RateLimiter) *RecognizeHandler {
	return &RecognizeHandler{recognizer: recognizer, requireAuth: requireAuth, limiter: limiter}
}

func (h *RecognizeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recognize", h.requireAuth, h.limiter.RateLimitMiddleware(), h.Recognize)
}

// Recognize reads the multipart "image" field and returns the ingredients
// the vision model sees in it.
func (h *RecognizeHandler) Recognize(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected multipart/form-data"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	if len(data) > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	result, err := h.recognizer.Recognize(c.Request.Context(), service.Photo{
		Filename: header.Filename,
		MIMEType: mimeType,
		Data:     data,
	})
	if err != nil {
		if errors.Is(err, service.ErrAPIKeyMissing) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
			return
		}
		logging.Error().Err(err).Msg("ingredient recognition failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recognition failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.RecognizeResponse{
		Ingredients: result.Ingredients,
		PhotoURL:    result.PhotoURL,
	})
}
