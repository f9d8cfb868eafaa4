package helpers

import (
	"context"
	"sync"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// StaticSource serves fixed content for every locale and counts its calls
type StaticSource struct {
	content *api.Content
	err     error
	calls   int
	mu      sync.Mutex
}

// NewTestConfig creates a default configuration with debug logging enabled
// and a file content source
func NewTestConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.LogLevel = "debug"
	cfg.ContentFile = "testdata/content.yaml"
	return cfg
}

// NewStaticSource creates a source serving NewTestContent
func NewStaticSource() *StaticSource {
	return &StaticSource{content: NewTestContent()}
}

func (s *StaticSource) Content(
	_ context.Context, locale string,
) (*api.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	res := *s.content
	res.Locale = locale
	return &res, nil
}

// SetError makes subsequent calls fail with err, or succeed again when err
// is nil
func (s *StaticSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls returns how often the content was requested
func (s *StaticSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
