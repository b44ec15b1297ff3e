package config

import (
	"fmt"
	"os"
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

// ValidateConfig checks the configuration for the current environment.
// Development and test fall back to safe defaults; production refuses to
// start with placeholder credentials.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errs = append(errs, "database host, port and name must be set")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == "your-secret-key" {
			errs = append(errs, "JWT_SECRET must be set in production")
		}
		if cfg.DBPassword == "" || cfg.DBPassword == "postgres" {
			errs = append(errs, "DB_PASSWORD must be set in production")
		}
	}

	if cfg.ScoringGuidePath != "" {
		if _, err := os.Stat(cfg.ScoringGuidePath); err != nil {
			errs = append(errs, fmt.Sprintf("SCORING_GUIDE_PATH %s is not readable", cfg.ScoringGuidePath))
		}
	}

	if len(errs) > 0 {
		return ValidationError{Field: "config", Message: strings.Join(errs, "; ")}
	}
	return nil
}
