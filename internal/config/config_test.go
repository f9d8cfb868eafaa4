package config_test

import (
	"testing"
	"time"

	testify "github.com/stretchr/testify/assert"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/assert"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/assert/helpers"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
)

func TestConfigValidation(t *testing.T) {
	as := assert.New(t)

	t.Run("valid_test_config", func(t *testing.T) {
		cfg := helpers.NewTestConfig()
		as.ConfigValid(cfg)
	})

	t.Run("valid_contentful_config", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.Contentful.SpaceID = "space"
		cfg.Contentful.AccessToken = "token"
		as.ConfigValid(cfg)
	})

	tests := []struct {
		name          string
		configMod     func(*config.Config)
		errorContains string
	}{
		{
			name: "invalid_api_port_zero",
			configMod: func(c *config.Config) {
				c.APIPort = 0
			},
			errorContains: "invalid API port",
		},
		{
			name: "invalid_api_port_too_high",
			configMod: func(c *config.Config) {
				c.APIPort = 70000
			},
			errorContains: "invalid API port",
		},
		{
			name: "no_content_source",
			configMod: func(c *config.Config) {
				c.ContentFile = ""
			},
			errorContains: "no content source configured",
		},
		{
			name: "preview_without_token",
			configMod: func(c *config.Config) {
				c.ContentFile = ""
				c.Contentful.SpaceID = "space"
				c.Contentful.AccessToken = "token"
				c.Contentful.Preview = true
			},
			errorContains: "preview mode requires a preview token",
		},
		{
			name: "zero_contentful_timeout",
			configMod: func(c *config.Config) {
				c.ContentFile = ""
				c.Contentful.SpaceID = "space"
				c.Contentful.AccessToken = "token"
				c.Contentful.Timeout = 0
			},
			errorContains: "contentful timeout must be positive",
		},
		{
			name: "zero_cache_size",
			configMod: func(c *config.Config) {
				c.ContentCacheSize = 0
			},
			errorContains: "content cache size must be positive",
		},
		{
			name: "negative_cache_ttl",
			configMod: func(c *config.Config) {
				c.ContentCacheTTL = -time.Second
			},
			errorContains: "content cache TTL cannot be negative",
		},
		{
			name: "missing_bucket",
			configMod: func(c *config.Config) {
				c.ArchiveBucketURL = ""
			},
			errorContains: "archive bucket URL is required",
		},
		{
			name: "origin_without_scheme",
			configMod: func(c *config.Config) {
				c.AllowedOrigins = []string{"example.com"}
			},
			errorContains: "allowed origins must be",
		},
		{
			name: "missing_locale",
			configMod: func(c *config.Config) {
				c.DefaultLocale = ""
			},
			errorContains: "default locale is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := helpers.NewTestConfig()
			tt.configMod(cfg)
			as.ConfigInvalid(cfg, tt.errorContains)
		})
	}
}

func TestDefaultConfigValues(t *testing.T) {
	as := assert.New(t)

	cfg := config.NewDefaultConfig()

	as.Equal(config.DefaultAPIPort, cfg.APIPort)
	as.Equal("0.0.0.0", cfg.APIHost)
	as.Equal("info", cfg.LogLevel)
	as.Equal([]string{"*"}, cfg.AllowedOrigins)
	as.Equal(config.DefaultRedisEndpoint, cfg.SessionStore.Addr)
	as.Equal(config.DefaultRedisPrefix, cfg.SessionStore.Prefix)
	as.Equal(config.DefaultLocale, cfg.DefaultLocale)
	as.Equal("master", cfg.Contentful.Environment)
	as.Equal(config.DefaultContentfulTimeout, cfg.Contentful.Timeout)
	as.Equal(config.DefaultContentCacheTTL, cfg.ContentCacheTTL)
	as.Equal(config.DefaultArchiveBucketURL, cfg.ArchiveBucketURL)
	as.Equal(config.DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestAllowsAllOrigins(t *testing.T) {
	cfg := config.NewDefaultConfig()
	testify.True(t, cfg.AllowsAllOrigins())

	cfg.AllowedOrigins = []string{"https://a.example"}
	testify.False(t, cfg.AllowsAllOrigins())

	cfg.AllowedOrigins = nil
	testify.True(t, cfg.AllowsAllOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("WEBHOOK_SECRET", "shh")
	t.Setenv("SESSION_REDIS_ADDR", "redis:6380")
	t.Setenv("SESSION_REDIS_DB", "3")
	t.Setenv("SESSION_REDIS_PREFIX", "pm")
	t.Setenv("CONTENTFUL_SPACE_ID", "space")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "delivery")
	t.Setenv("CONTENTFUL_PREVIEW_TOKEN", "preview")
	t.Setenv("CONTENTFUL_PREVIEW", "true")
	t.Setenv("CONTENTFUL_TIMEOUT", "2500")
	t.Setenv("CONTENT_CACHE_SIZE", "4")
	t.Setenv("CONTENT_CACHE_TTL", "60")
	t.Setenv("DEFAULT_LOCALE", "en-US")
	t.Setenv("ARCHIVE_BUCKET_URL", "file:///tmp/pm")
	t.Setenv("SHUTDOWN_TIMEOUT", "500")

	cfg := config.NewDefaultConfig()
	err := cfg.LoadFromEnv()
	testify.NoError(t, err)

	testify.Equal(t, "127.0.0.1", cfg.APIHost)
	testify.Equal(t, 9090, cfg.APIPort)
	testify.Equal(t, "debug", cfg.LogLevel)
	testify.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		cfg.AllowedOrigins,
	)
	testify.Equal(t, "shh", cfg.WebhookSecret)
	testify.Equal(t, "redis:6380", cfg.SessionStore.Addr)
	testify.Equal(t, 3, cfg.SessionStore.DB)
	testify.Equal(t, "pm", cfg.SessionStore.Prefix)
	testify.Equal(t, "space", cfg.Contentful.SpaceID)
	testify.Equal(t, "delivery", cfg.Contentful.AccessToken)
	testify.Equal(t, "preview", cfg.Contentful.PreviewToken)
	testify.True(t, cfg.Contentful.Preview)
	testify.Equal(t, 2500*time.Millisecond, cfg.Contentful.Timeout)
	testify.Equal(t, 4, cfg.ContentCacheSize)
	testify.Equal(t, time.Minute, cfg.ContentCacheTTL)
	testify.Equal(t, "en-US", cfg.DefaultLocale)
	testify.Equal(t, "file:///tmp/pm", cfg.ArchiveBucketURL)
	testify.Equal(t, 500*time.Millisecond, cfg.ShutdownTimeout)
	testify.NoError(t, cfg.Validate())
}

func TestLoadFromEnvErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"API_PORT", "not-a-number"},
		{"API_PORT", "70000"},
		{"CONTENT_CACHE_SIZE", "0"},
		{"CONTENT_CACHE_TTL", "-1"},
		{"CONTENTFUL_TIMEOUT", "abc"},
		{"SHUTDOWN_TIMEOUT", "9999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := config.NewDefaultConfig()
			testify.Error(t, cfg.LoadFromEnv())
		})
	}
}
