package cms

import (
	"context"
	"errors"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// Source provides the wizard content for a locale
type Source interface {
	Content(ctx context.Context, locale string) (*api.Content, error)
}

var (
	ErrLocaleRequired = errors.New("locale is required")
	ErrLocaleNotFound = errors.New("locale not found")
)

// NewFromConfig creates the cached content source the configuration
// selects: a YAML file when one is set, otherwise Contentful
func NewFromConfig(cfg *config.Config) *CachedSource {
	var src Source
	if cfg.ContentFile != "" {
		src = NewFileSource(cfg.ContentFile)
	} else {
		src = NewContentful(cfg.Contentful)
	}
	return NewCachedSource(src, cfg.ContentCacheSize, cfg.ContentCacheTTL)
}
