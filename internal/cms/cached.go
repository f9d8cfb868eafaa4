package cms

import (
	"context"
	"log/slog"
	"time"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/util"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/log"
)

// CachedSource keeps recently fetched content per locale. Failed fetches
// are not cached
type CachedSource struct {
	source Source
	cache  *util.TTLCache[*api.Content]
}

var _ Source = (*CachedSource)(nil)

func NewCachedSource(
	source Source, size int, ttl time.Duration,
) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  util.NewTTLCache[*api.Content](size, ttl),
	}
}

func (s *CachedSource) Content(
	ctx context.Context, locale string,
) (*api.Content, error) {
	if locale == "" {
		return nil, ErrLocaleRequired
	}
	return s.cache.Get(locale, func() (*api.Content, error) {
		return s.source.Content(ctx, locale)
	})
}

// Invalidate drops the cached content of the given locales, or of every
// locale when none are named
func (s *CachedSource) Invalidate(locales ...string) {
	if len(locales) == 0 {
		s.cache.Clear()
		slog.Info("Content cache cleared")
		return
	}
	for _, l := range locales {
		s.cache.Remove(l)
		slog.Info("Content cache invalidated", log.Locale(l))
	}
}
