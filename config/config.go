package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration. DatabaseURL wins over the individual parts;
	// leaving both empty runs the service on the static catalog.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Ingredient recognition
	GeminiAPIKey string
	GeminiModel  string

	// Photo archive
	S3Bucket   string
	S3Endpoint string
	AWSRegion  string

	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

// HasDatabase reports whether a recipe database is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

// DSN builds a PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// HasRedis reports whether Redis is configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test, Production:
		loadConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig reads everything from plain environment variables. CI
// runners hand secrets over as TEST_* variables.
func loadCIConfig(cfg *Config) {
	loadConfig(cfg)
	if v := os.Getenv("TEST_DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("TEST_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TEST_REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("TEST_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
}

// loadConfig resolves every field from a Docker secret first and the
// matching environment variable second.
func loadConfig(cfg *Config) {
	cfg.ServerPort = lookup("server_port")
	cfg.ServerHost = lookup("server_host")

	cfg.DatabaseURL = lookup("database_url")
	cfg.DBHost = lookup("db_host")
	cfg.DBPort = lookup("db_port")
	cfg.DBUser = lookup("db_user")
	cfg.DBPassword = lookup("db_password")
	cfg.DBName = lookup("db_name")
	cfg.DBSSLMode = lookup("db_ssl_mode")
	cfg.AutoMigrate = parseBool(lookup("auto_migrate"))

	cfg.RedisURL = lookup("redis_url")
	cfg.RedisHost = lookup("redis_host")
	cfg.RedisPort = lookup("redis_port")
	cfg.RedisPassword = lookup("redis_password")
	cfg.RedisDB, _ = strconv.Atoi(lookup("redis_db"))

	cfg.JWTSecret = lookup("jwt_secret")

	cfg.GeminiAPIKey = lookup("gemini_api_key")
	cfg.GeminiModel = lookup("gemini_model")

	cfg.S3Bucket = lookup("s3_bucket_name")
	cfg.S3Endpoint = lookup("s3_endpoint")
	cfg.AWSRegion = lookup("aws_region")

	cfg.CORSOrigins = splitList(lookup("cors_allowed_origins"))

	cfg.LogLevel = lookup("log_level")
	cfg.LogFormat = lookup("log_format")
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.DBHost != "" {
		if cfg.DBPort == "" {
			cfg.DBPort = "5432"
		}
		if cfg.DBSSLMode == "" {
			cfg.DBSSLMode = "disable"
		}
	}
	if cfg.RedisHost != "" && cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if IsDevelopment() {
			cfg.LogFormat = "console"
		}
	}
}

// lookup returns the Docker secret called name, falling back to the
// upper-cased environment variable.
func lookup(name string) string {
	if v := readSecret(name); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(strings.ToUpper(name)))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
