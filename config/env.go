package config

import (
	"os"
	"strings"
)

// Environment is the deployment stage SmartChef runs in. It selects how
// secrets are loaded, the default log format and whether gin runs in
// release mode.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads SMARTCHEF_ENV, falling back to ENV. CI=true wins
// over both; unknown values mean development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	name := os.Getenv("SMARTCHEF_ENV")
	if name == "" {
		name = os.Getenv("ENV")
	}
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Production, "prod":
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

func IsDevelopment() bool {
	return GetEnvironment() == Development
}

func IsProduction() bool {
	return GetEnvironment() == Production
}
