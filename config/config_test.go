package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points SECRETS_DIR at an empty temp dir and clears the
// variables LoadConfig reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SMARTCHEF_ENV", "")
	for _, name := range []string{
		"SERVER_PORT", "SERVER_HOST", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "REDIS_URL", "REDIS_HOST", "REDIS_PORT",
		"JWT_SECRET", "GEMINI_API_KEY", "GEMINI_MODEL", "S3_BUCKET_NAME", "S3_ENDPOINT", "AWS_REGION",
		"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "AUTO_MIGRATE",
	} {
		t.Setenv(name, "")
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "smartchef")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=smartchef sslmode=disable", cfg.DSN())

	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.True(t, cfg.HasRedis())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasRedis())
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadConfigPrefersSecrets(t *testing.T) {
	dir := isolate(t)
	t.Setenv("JWT_SECRET", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestLoadConfigCIUsesTestVariables(t *testing.T) {
	isolate(t)
	t.Setenv("CI", "true")
	t.Setenv("TEST_JWT_SECRET", "ci-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ci-secret", cfg.JWTSecret)
}

func TestValidateConfig(t *testing.T) {
	isolate(t)

	err := ValidateConfig(&Config{ServerPort: "abc", DBHost: "db", LogFormat: "xml"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, v := range verrs {
		fields[i] = v.Field
	}
	assert.ElementsMatch(t, []string{"SERVER_PORT", "jwt_secret", "DB_NAME", "DB_USER", "LOG_FORMAT"}, fields)
}

func TestValidateConfigProductionSecretLength(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")

	err := ValidateConfig(&Config{ServerPort: "8080", JWTSecret: "short", LogFormat: "json"})
	assert.ErrorContains(t, err, "at least 32 characters")
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		ci, sc, env string
		want        Environment
	}{
		{"default", "", "", "", Development},
		{"ENV fallback", "", "", "test", Test},
		{"SMARTCHEF_ENV wins over ENV", "", "production", "development", Production},
		{"prod alias", "", " Prod ", "", Production},
		{"CI wins", "true", "production", "", CI},
		{"unknown", "", "staging", "", Development},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ci)
			t.Setenv("SMARTCHEF_ENV", tt.sc)
			t.Setenv("ENV", tt.env)
			assert.Equal(t, tt.want, GetEnvironment())
		})
	}
}

func TestLoadConfigReadsS3Endpoint(t *testing.T) {
	isolate(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("S3_BUCKET_NAME", "photos")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "photos", cfg.S3Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3Endpoint)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}
