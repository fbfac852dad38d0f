package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smartchef/backend/internal/model"
	"github.com/smartchef/backend/internal/service"
	"github.com/smartchef/backend/internal/testhelpers"
)

const testJWTSecret = "api-test-secret"

type testEnv struct {
	router *gin.Engine
	auth   *service.AuthService
}

type envOptions struct {
	db          *gorm.DB
	vision      service.VisionModel
	preferences service.PreferenceStore
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService(opts.db)
	auth := service.NewAuthService(opts.db, testJWTSecret)
	deps := Dependencies{
		DB:         opts.db,
		Catalog:    catalog,
		Matcher:    service.NewMatchService(catalog),
		Auth:       auth,
		Saved:      service.NewSavedRecipeService(opts.db, catalog),
		Recognizer: service.NewRecognitionService(opts.vision, nil),
	}
	if opts.preferences != nil {
		deps.Preferences = opts.preferences
	}

	router := gin.New()
	RegisterRoutes(router, deps)
	return &testEnv{router: router, auth: auth}
}

// seededDB returns a SQLite database holding the built-in catalog.
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testhelpers.NewSQLiteDB(t)
	for _, r := range service.StaticRecipes() {
		row := model.RecipeFromMatching(r)
		require.NoError(t, db.Create(&row).Error)
	}
	return db
}

func (e *testEnv) token(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	user := &model.User{ID: uuid.New(), Email: "cook@example.com"}
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return user.ID, token
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) upload(t *testing.T, token, field, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
		h["Content-Type"] = []string{contentType}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no image here"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
