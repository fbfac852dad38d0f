package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/backend/config"
	"github.com/smartchef/backend/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:  "127.0.0.1",
		ServerPort:  "0",
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func TestBootstrapWithoutBackends(t *testing.T) {
	deps, cleanup, err := Bootstrap(context.Background(), testConfig())
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, deps.DB)
	assert.Nil(t, deps.Preferences)
	assert.NotNil(t, deps.RecognitionLimiter)

	page, source := deps.Catalog.All(context.Background())
	assert.Equal(t, service.SourceStatic, source)
	assert.NotEmpty(t, page)
}

func TestServerRoutes(t *testing.T) {
	cfg := testConfig()
	deps, cleanup, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	handler := New(cfg, deps).Handler()

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/recipes", http.StatusOK},
		{http.MethodGet, "/api/v1/recipes/pancakes", http.StatusOK},
		{http.MethodGet, "/api/v1/saved", http.StatusUnauthorized},
		{http.MethodGet, "/no-such-route", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testConfig()
	deps, cleanup, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	handler := New(cfg, deps).Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "smartchef_http_requests_total")
	assert.Contains(t, body, `source="static"`)
}

func TestRecoveryMiddlewareIsInstalled(t *testing.T) {
	cfg := testConfig()
	deps, cleanup, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	srv := New(cfg, deps)
	srv.router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStartAndShutdown(t *testing.T) {
	cfg := testConfig()
	deps, cleanup, err := Bootstrap(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	srv := New(cfg, deps)
	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
