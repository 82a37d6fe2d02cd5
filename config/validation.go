package config

import (
	"fmt"
	"net/url"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration before the client starts
func ValidateConfig(cfg *Config) error {
	if cfg.APIBaseURL == "" {
		return ValidationError{Field: "APIBaseURL", Message: "must not be empty"}
	}
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError{Field: "APIBaseURL", Message: "must be an absolute URL"}
	}
	if cfg.RequestTimeout <= 0 {
		return ValidationError{Field: "RequestTimeout", Message: "must be positive"}
	}
	if cfg.CacheTTL <= 0 {
		return ValidationError{Field: "CacheTTL", Message: "must be positive"}
	}
	if cfg.PageSize < 1 {
		return ValidationError{Field: "PageSize", Message: "must be at least 1"}
	}
	if cfg.SearchDebounce < 0 {
		return ValidationError{Field: "SearchDebounce", Message: "must not be negative"}
	}
	if cfg.RequestsPerSecond < 0 {
		return ValidationError{Field: "RequestsPerSecond", Message: "must not be negative"}
	}
	return nil
}
