package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kode4food/timebox"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/archive"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/cms"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/config"
	"github.com/advier-web/parkmanager-tool-new-sub001/internal/session"
)

// TestEnv holds the components a service test needs, backed by an
// in-memory Redis and an in-memory bucket
type TestEnv struct {
	Redis    *miniredis.Miniredis
	Config   *config.Config
	Timebox  *timebox.Timebox
	Store    *timebox.Store
	Sessions *session.Store
	Hub      *timebox.EventHub
	Source   *StaticSource
	Content  *cms.CachedSource
	Archive  *archive.Archive
}

// NewTestEnv creates a TestEnv whose resources are released when the test
// ends
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)

	tbCfg := timebox.DefaultConfig()
	tbCfg.Workers = false
	tb, err := timebox.NewTimebox(tbCfg)
	require.NoError(t, err)

	cfg := NewTestConfig()
	cfg.SessionStore.Addr = server.Addr()
	cfg.SessionStore.Prefix = "test-session"

	store, err := tb.NewStore(cfg.SessionStore)
	require.NoError(t, err)

	arch, err := archive.Open(context.Background(), "mem://", "test/")
	require.NoError(t, err)

	sessions := session.NewStore(store)
	sessions.OnReset(arch.PurgeSession)

	src := NewStaticSource()

	t.Cleanup(func() {
		_ = arch.Close()
		_ = store.Close()
		_ = tb.Close()
		server.Close()
	})

	return &TestEnv{
		Redis:    server,
		Config:   cfg,
		Timebox:  tb,
		Store:    store,
		Sessions: sessions,
		Hub:      tb.GetHub(),
		Source:   src,
		Content:  cms.NewCachedSource(src, 4, time.Minute),
		Archive:  arch,
	}
}
