package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kode4food/timebox"
)

type (
	// Config holds configuration settings for the Parkmanager service
	Config struct {
		// API Server
		APIHost        string
		APIPort        int
		LogLevel       string
		AllowedOrigins []string
		WebhookSecret  string

		// Sessions
		SessionStore timebox.StoreConfig

		// Content
		Contentful       ContentfulConfig
		ContentFile      string
		DefaultLocale    string
		ContentCacheSize int
		ContentCacheTTL  time.Duration

		// Documents
		ArchiveBucketURL string
		ArchivePrefix    string

		ShutdownTimeout time.Duration
	}

	// ContentfulConfig holds the credentials and endpoint for the CMS
	ContentfulConfig struct {
		SpaceID      string
		Environment  string
		AccessToken  string
		PreviewToken string
		BaseURL      string
		Preview      bool
		Timeout      time.Duration
	}
)

const (
	DefaultAPIPort = 8080
	DefaultAPIHost = "0.0.0.0"
	MaxTCPPort     = 65535

	DefaultRedisEndpoint = "localhost:6379"
	DefaultRedisPrefix   = "parkmanager"

	DefaultContentfulEnvironment = "master"
	DefaultContentfulTimeout     = 10 * time.Second
	DefaultLocale                = "nl"
	DefaultContentCacheSize      = 16
	DefaultContentCacheTTL       = 5 * time.Minute
	DefaultArchiveBucketURL      = "mem://"
	DefaultArchivePrefix         = "documents/"
	DefaultShutdownTimeout       = 10 * time.Second

	MaxContentCacheSize = 1024
	MaxTimeoutMillis    = 5 * 60 * 1000
	MaxCacheTTLSeconds  = 24 * 60 * 60
)

var (
	ErrInvalidAPIPort          = errors.New("invalid API port")
	ErrContentSourceMissing    = errors.New("no content source configured")
	ErrInvalidContentCacheSize = errors.New(
		"content cache size must be positive",
	)
	ErrInvalidContentCacheTTL = errors.New(
		"content cache TTL cannot be negative",
	)
	ErrInvalidContentfulTimeout = errors.New(
		"contentful timeout must be positive",
	)
	ErrPreviewTokenMissing = errors.New(
		"preview mode requires a preview token",
	)
	ErrArchiveBucketMissing = errors.New("archive bucket URL is required")
	ErrDefaultLocaleMissing = errors.New("default locale is required")
	ErrInvalidAllowedOrigin = errors.New(
		"allowed origins must be * or start with http:// or https://",
	)
)

// NewDefaultConfig creates a configuration with sensible defaults for all
// service settings, the session store, and the content source
func NewDefaultConfig() *Config {
	store := timebox.DefaultStoreConfig()
	store.Addr = DefaultRedisEndpoint
	store.Prefix = DefaultRedisPrefix

	return &Config{
		APIPort:        DefaultAPIPort,
		APIHost:        DefaultAPIHost,
		LogLevel:       "info",
		AllowedOrigins: []string{"*"},
		SessionStore:   store,
		Contentful: ContentfulConfig{
			Environment: DefaultContentfulEnvironment,
			Timeout:     DefaultContentfulTimeout,
		},
		DefaultLocale:    DefaultLocale,
		ContentCacheSize: DefaultContentCacheSize,
		ContentCacheTTL:  DefaultContentCacheTTL,
		ArchiveBucketURL: DefaultArchiveBucketURL,
		ArchivePrefix:    DefaultArchivePrefix,
		ShutdownTimeout:  DefaultShutdownTimeout,
	}
}

// LoadFromEnv populates configuration values from environment variables.
// Returns an error if any env var cannot be parsed.
func (c *Config) LoadFromEnv() error {
	LoadStoreConfigFromEnv(&c.SessionStore, "SESSION")

	if apiHost := os.Getenv("API_HOST"); apiHost != "" {
		c.APIHost = apiHost
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.LogLevel = logLevel
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
	if secret := os.Getenv("WEBHOOK_SECRET"); secret != "" {
		c.WebhookSecret = secret
	}
	if file := os.Getenv("CONTENT_FILE"); file != "" {
		c.ContentFile = file
	}
	if locale := os.Getenv("DEFAULT_LOCALE"); locale != "" {
		c.DefaultLocale = locale
	}
	if bucket := os.Getenv("ARCHIVE_BUCKET_URL"); bucket != "" {
		c.ArchiveBucketURL = bucket
	}
	if prefix := os.Getenv("ARCHIVE_PREFIX"); prefix != "" {
		c.ArchivePrefix = prefix
	}

	c.loadContentfulFromEnv()

	if err := loadEnvInt("API_PORT", &c.APIPort, 0, MaxTCPPort); err != nil {
		return err
	}
	if err := loadEnvInt(
		"CONTENT_CACHE_SIZE", &c.ContentCacheSize, 0, MaxContentCacheSize,
	); err != nil {
		return err
	}
	if err := loadEnvDuration(
		"CONTENT_CACHE_TTL", &c.ContentCacheTTL, time.Second,
		MaxCacheTTLSeconds,
	); err != nil {
		return err
	}
	if err := loadEnvDuration(
		"CONTENTFUL_TIMEOUT", &c.Contentful.Timeout, time.Millisecond,
		MaxTimeoutMillis,
	); err != nil {
		return err
	}
	return loadEnvDuration(
		"SHUTDOWN_TIMEOUT", &c.ShutdownTimeout, time.Millisecond,
		MaxTimeoutMillis,
	)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.APIPort <= 0 || c.APIPort > MaxTCPPort {
		return fmt.Errorf("%w: %d", ErrInvalidAPIPort, c.APIPort)
	}

	if c.ContentFile == "" {
		cf := c.Contentful
		if cf.SpaceID == "" || cf.AccessToken == "" {
			return ErrContentSourceMissing
		}
		if cf.Preview && cf.PreviewToken == "" {
			return ErrPreviewTokenMissing
		}
		if cf.Timeout <= 0 {
			return ErrInvalidContentfulTimeout
		}
	}

	if c.DefaultLocale == "" {
		return ErrDefaultLocaleMissing
	}

	if c.ContentCacheSize <= 0 {
		return ErrInvalidContentCacheSize
	}

	if c.ContentCacheTTL < 0 {
		return ErrInvalidContentCacheTTL
	}

	if c.ArchiveBucketURL == "" {
		return ErrArchiveBucketMissing
	}

	for _, o := range c.AllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") &&
			!strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%w: %s", ErrInvalidAllowedOrigin, o)
		}
	}

	return nil
}

// AllowsAllOrigins reports whether any origin may call the API
func (c *Config) AllowsAllOrigins() bool {
	return len(c.AllowedOrigins) == 0 || slices.Contains(c.AllowedOrigins, "*")
}

func (c *Config) loadContentfulFromEnv() {
	cf := &c.Contentful
	if space := os.Getenv("CONTENTFUL_SPACE_ID"); space != "" {
		cf.SpaceID = space
	}
	if env := os.Getenv("CONTENTFUL_ENVIRONMENT"); env != "" {
		cf.Environment = env
	}
	if token := os.Getenv("CONTENTFUL_ACCESS_TOKEN"); token != "" {
		cf.AccessToken = token
	}
	if token := os.Getenv("CONTENTFUL_PREVIEW_TOKEN"); token != "" {
		cf.PreviewToken = token
	}
	if base := os.Getenv("CONTENTFUL_BASE_URL"); base != "" {
		cf.BaseURL = base
	}
	if preview := os.Getenv("CONTENTFUL_PREVIEW"); preview != "" {
		if b, err := strconv.ParseBool(preview); err == nil {
			cf.Preview = b
		}
	}
}

// LoadStoreConfigFromEnv loads Redis store configuration from environment
// variables with the given prefix (e.g., "SESSION")
func LoadStoreConfigFromEnv(s *timebox.StoreConfig, prefix string) {
	if addr := os.Getenv(prefix + "_REDIS_ADDR"); addr != "" {
		s.Addr = addr
	}
	if password := os.Getenv(prefix + "_REDIS_PASSWORD"); password != "" {
		s.Password = password
	}
	if dbStr := os.Getenv(prefix + "_REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err == nil {
			s.DB = db
		}
	}
	if envPrefix := os.Getenv(prefix + "_REDIS_PREFIX"); envPrefix != "" {
		s.Prefix = envPrefix
	}
	if envCount := os.Getenv(prefix + "_SNAPSHOT_WORKERS"); envCount != "" {
		if wc, err := strconv.Atoi(envCount); err == nil && wc >= 0 {
			s.WorkerCount = wc
		}
	}
}

// loadEnvInt reads key from the environment, parses it as an integer, and
// sets *dst if the value is in the range (min, max]. Returns an error if
// the value cannot be parsed or falls outside the valid range.
func loadEnvInt[T ~int | ~int64](key string, dst *T, min, max T) error {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, s)
	}
	tv := T(v)
	if tv <= min || tv > max {
		return fmt.Errorf("invalid %s: %d out of range [%d, %d]",
			key, tv, min+1, max)
	}
	*dst = tv
	return nil
}

// loadEnvDuration reads an integer count of unit from the environment and
// stores it in *dst
func loadEnvDuration(
	key string, dst *time.Duration, unit time.Duration, max int64,
) error {
	var n int64
	if err := loadEnvInt(key, &n, 0, max); err != nil {
		return err
	}
	if n > 0 {
		*dst = time.Duration(n) * unit
	}
	return nil
}

func splitList(s string) []string {
	var res []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			res = append(res, p)
		}
	}
	return res
}
