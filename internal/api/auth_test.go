package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/backend/internal/testhelpers"
	"github.com/smartchef/backend/internal/types"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv(t, envOptions{db: testhelpers.NewSQLiteDB(t)})

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decode[types.AuthResponse](t, w)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ada@example.com", registered.User.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "correct-horse",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decode[types.AuthResponse](t, w)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t, envOptions{db: testhelpers.NewSQLiteDB(t)})

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"email": "a@example.com", "password": "long-enough"}},
		{"bad email", gin.H{"name": "A", "email": "not-an-email", "password": "long-enough"}},
		{"short password", gin.H{"name": "A", "email": "a@example.com", "password": "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthWithoutDatabase(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email": "ada@example.com", "password": "correct-horse",
	}, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
