package config

import (
	"fmt"
	"os"
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

// ValidationErrors collects every problem found in one pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "\n")
}

// Has reports whether a field failed validation
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// requiredEnvVars lists variables that must be set explicitly, not defaulted
var requiredEnvVars = map[Environment][]string{
	Production: {"SERVER_PORT", "CORS_ALLOWED_ORIGINS"},
}

// ValidateConfig checks the configuration against the rules for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	for _, name := range requiredEnvVars[cfg.Environment] {
		if os.Getenv(name) == "" {
			add(name, "required in %s", cfg.Environment)
		}
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		add("SERVER_PORT", "must be a port number, got %q", cfg.ServerPort)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		add("LOG_LEVEL", "must be one of debug, info, warn, error")
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		add("LOG_FORMAT", "must be json or console")
	}

	switch cfg.CatalogSource {
	case "embedded":
	case "file":
		if cfg.CatalogPath == "" {
			add("CATALOG_PATH", "required when CATALOG_SOURCE is file")
		}
	case "database":
		if cfg.DatabaseURL == "" {
			add("DATABASE_URL", "required when CATALOG_SOURCE is database")
		}
	default:
		add("CATALOG_SOURCE", "must be embedded, file or database, got %q", cfg.CatalogSource)
	}

	if cfg.DetectionTimeout <= 0 {
		add("DETECTION_TIMEOUT", "must be positive")
	}
	if cfg.DetectionMinConfidence < 0 || cfg.DetectionMinConfidence >= 1 {
		add("DETECTION_MIN_CONFIDENCE", "must be in [0, 1)")
	}
	if cfg.DetectRateLimit < 0 {
		add("DETECT_RATE_LIMIT", "must not be negative")
	}
	if cfg.ClarifaiAPIKey != "" && cfg.ClarifaiAPIURL == "" {
		add("CLARIFAI_API_URL", "required when CLARIFAI_API_KEY is set")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
