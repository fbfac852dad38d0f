package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks the configuration for the current environment.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: "must be a number"})
	}

	if cfg.JWTSecret == "" {
		if GetEnvironment() == CI {
			errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "environment variable is required in CI environment"})
		} else {
			errs = append(errs, ValidationError{Field: "jwt_secret", Message: "secret is required"})
		}
	} else if IsProduction() && len(cfg.JWTSecret) < 32 {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "must be at least 32 characters in production"})
	}

	if cfg.DatabaseURL == "" && cfg.DBHost != "" {
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DB_NAME", Message: "is required when DB_HOST is set"})
		}
		if cfg.DBUser == "" {
			errs = append(errs, ValidationError{Field: "DB_USER", Message: "is required when DB_HOST is set"})
		}
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, ValidationError{Field: "LOG_FORMAT", Message: "must be json or console"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
