package archive_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/archive"
)

func openArchive(t *testing.T) *archive.Archive {
	t.Helper()
	a, err := archive.Open(context.Background(), "mem://", "test/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "factsheets/nl/sol-1.pdf", archive.FactsheetKey("nl", "sol-1"))
	assert.Equal(t, "sessions/abc/summary.pdf", archive.SummaryKey("abc"))
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	a := openArchive(t)
	key := archive.FactsheetKey("nl", "sol-1")

	t.Run("Get returns not found for missing document", func(t *testing.T) {
		_, err := a.Get(ctx, key)
		assert.ErrorIs(t, err, archive.ErrDocumentNotFound)

		_, err = a.Stamp(ctx, key)
		assert.ErrorIs(t, err, archive.ErrDocumentNotFound)
	})

	t.Run("Put and Get round-trip", func(t *testing.T) {
		require.NoError(t, a.Put(ctx, key, "v1", []byte("%PDF-1")))

		data, err := a.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1"), data)

		stamp, err := a.Stamp(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "v1", stamp)
	})

	t.Run("Delete removes document", func(t *testing.T) {
		require.NoError(t, a.Delete(ctx, key))
		_, err := a.Get(ctx, key)
		assert.ErrorIs(t, err, archive.ErrDocumentNotFound)
	})

	t.Run("Delete of missing document succeeds", func(t *testing.T) {
		assert.NoError(t, a.Delete(ctx, key))
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	a := openArchive(t)
	key := archive.SummaryKey("s1")

	renders := 0
	render := func() ([]byte, error) {
		renders++
		return []byte{byte(renders)}, nil
	}

	data, err := a.Fetch(ctx, key, "v1", render)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)

	data, err = a.Fetch(ctx, key, "v1", render)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)
	assert.Equal(t, 1, renders)

	data, err = a.Fetch(ctx, key, "v2", render)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, data)
	assert.Equal(t, 2, renders)

	stored, err := a.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, stored)
}

func TestFetchRenderError(t *testing.T) {
	ctx := context.Background()
	a := openArchive(t)
	boom := errors.New("render failed")

	_, err := a.Fetch(ctx, "k.pdf", "v1", func() ([]byte, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = a.Get(ctx, "k.pdf")
	assert.ErrorIs(t, err, archive.ErrDocumentNotFound)
}

func TestPurgeSession(t *testing.T) {
	ctx := context.Background()
	a := openArchive(t)

	require.NoError(t, a.Put(ctx, archive.SummaryKey("s1"), "x", []byte("a")))
	require.NoError(t, a.Put(ctx, "sessions/s1/extra.pdf", "x", []byte("b")))
	require.NoError(t, a.Put(ctx, archive.SummaryKey("s10"), "x", []byte("c")))

	require.NoError(t, a.PurgeSession(ctx, "s1"))

	_, err := a.Get(ctx, archive.SummaryKey("s1"))
	assert.ErrorIs(t, err, archive.ErrDocumentNotFound)
	_, err = a.Get(ctx, "sessions/s1/extra.pdf")
	assert.ErrorIs(t, err, archive.ErrDocumentNotFound)

	data, err := a.Get(ctx, archive.SummaryKey("s10"))
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), data)

	assert.NoError(t, a.PurgeSession(ctx, "missing"))
}

func TestPurgeFactsheets(t *testing.T) {
	ctx := context.Background()
	a := openArchive(t)

	put := func(key string) {
		require.NoError(t, a.Put(ctx, key, "x", []byte("pdf")))
	}
	put(archive.FactsheetKey("nl", "a"))
	put(archive.FactsheetKey("nl", "b"))
	put(archive.FactsheetKey("en", "a"))
	put(archive.SummaryKey("s1"))

	require.NoError(t, a.PurgeFactsheets(ctx, "nl"))
	_, err := a.Get(ctx, archive.FactsheetKey("nl", "a"))
	assert.ErrorIs(t, err, archive.ErrDocumentNotFound)
	_, err = a.Get(ctx, archive.FactsheetKey("en", "a"))
	assert.NoError(t, err)

	require.NoError(t, a.PurgeFactsheets(ctx))
	_, err = a.Get(ctx, archive.FactsheetKey("en", "a"))
	assert.ErrorIs(t, err, archive.ErrDocumentNotFound)

	_, err = a.Get(ctx, archive.SummaryKey("s1"))
	assert.NoError(t, err)
}

func TestOpenInvalidURL(t *testing.T) {
	_, err := archive.Open(context.Background(), "bogus://bucket", "")
	assert.Error(t, err)
}
