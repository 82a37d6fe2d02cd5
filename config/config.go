package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPlaceholderImageURL is the image the API assigns to recipes created
// without a real photo. Deleting a recipe with this image must not delete the
// shared placeholder file.
const DefaultPlaceholderImageURL = "https://cdn.forkful.app/images/recipe-placeholder.png"

// Config holds all configuration for the client
type Config struct {
	// API configuration
	APIBaseURL     string
	RequestTimeout time.Duration

	// Cache configuration
	CacheTTL time.Duration

	// List configuration
	PageSize int

	// Search configuration
	SearchDebounce time.Duration

	// Outbound rate limit in requests per second; 0 disables the limiter
	RequestsPerSecond float64

	// Placeholder image assigned to recipes without an uploaded photo
	PlaceholderImageURL string
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Optional in development; env vars win over the file
		_ = godotenv.Load()
	}

	cfg := &Config{
		APIBaseURL:          getEnv("FORKFUL_API_URL", "http://localhost:5000"),
		RequestTimeout:      getDurationEnv("FORKFUL_REQUEST_TIMEOUT", 15*time.Second),
		CacheTTL:            getDurationEnv("FORKFUL_CACHE_TTL", 30*time.Second),
		PageSize:            getIntEnv("FORKFUL_PAGE_SIZE", 5),
		SearchDebounce:      getDurationEnv("FORKFUL_SEARCH_DEBOUNCE", 300*time.Millisecond),
		RequestsPerSecond:   getFloatEnv("FORKFUL_REQUESTS_PER_SECOND", 0),
		PlaceholderImageURL: getEnv("FORKFUL_PLACEHOLDER_IMAGE_URL", DefaultPlaceholderImageURL),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
