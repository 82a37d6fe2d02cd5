package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, DefaultPlaceholderImageURL, cfg.PlaceholderImageURL)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FORKFUL_API_URL", "https://api.forkful.app")
	t.Setenv("FORKFUL_CACHE_TTL", "45s")
	t.Setenv("FORKFUL_PAGE_SIZE", "10")
	t.Setenv("FORKFUL_REQUESTS_PER_SECOND", "2.5")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "https://api.forkful.app", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 2.5, cfg.RequestsPerSecond)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			APIBaseURL:     "http://localhost:5000",
			RequestTimeout: 15 * time.Second,
			CacheTTL:       30 * time.Second,
			PageSize:       5,
			SearchDebounce: 300 * time.Millisecond,
		}
	}

	cfg := base()
	cfg.APIBaseURL = ""
	assert.Error(t, ValidateConfig(cfg))

	cfg = base()
	cfg.APIBaseURL = "not a url"
	assert.Error(t, ValidateConfig(cfg))

	cfg = base()
	cfg.CacheTTL = 0
	assert.Error(t, ValidateConfig(cfg))

	cfg = base()
	cfg.PageSize = 0
	assert.Error(t, ValidateConfig(cfg))

	assert.NoError(t, ValidateConfig(base()))
}
