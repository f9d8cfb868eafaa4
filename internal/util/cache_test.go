package util

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTTLCache(t *testing.T) {
	cache := NewTTLCache[string](10, time.Minute)

	require.NotNil(t, cache)
	assert.Equal(t, 10, cache.maxSize)
	assert.Equal(t, time.Minute, cache.ttl)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheMiss(t *testing.T) {
	cache := NewTTLCache[string](10, 0)
	callCount := 0

	value, err := cache.Get("key1", func() (string, error) {
		callCount++
		return "value1", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "value1", value)
	assert.Equal(t, 1, callCount)
}

func TestCacheHit(t *testing.T) {
	cache := NewTTLCache[string](10, time.Minute)
	callCount := 0

	cons := func() (string, error) {
		callCount++
		return "value1", nil
	}

	value1, err := cache.Get("key1", cons)
	require.NoError(t, err)
	assert.Equal(t, "value1", value1)

	value2, err := cache.Get("key1", cons)
	require.NoError(t, err)
	assert.Equal(t, "value1", value2)
	assert.Equal(t, 1, callCount)
}

func TestConstructorErrorNotCached(t *testing.T) {
	cache := NewTTLCache[string](10, time.Minute)
	expectedErr := errors.New("constructor error")

	value, err := cache.Get("key1", func() (string, error) {
		return "", expectedErr
	})
	assert.ErrorIs(t, err, expectedErr)
	assert.Empty(t, value)
	assert.Equal(t, 0, cache.Len())

	value, err = cache.Get("key1", func() (string, error) {
		return "value1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "value1", value)
}

func TestExpiry(t *testing.T) {
	cache := NewTTLCache[int](10, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	calls := 0
	cons := func() (int, error) {
		calls++
		return calls, nil
	}

	v, err := cache.Get("k", cons)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	now = now.Add(59 * time.Second)
	v, err = cache.Get("k", cons)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	now = now.Add(time.Second)
	v, err = cache.Get("k", cons)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, cache.Len())
}

func TestEviction(t *testing.T) {
	cache := NewTTLCache[string](2, 0)

	for i := range 3 {
		key := fmt.Sprintf("key%d", i)
		_, err := cache.Get(key, func() (string, error) {
			return key, nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cache.Len())

	called := false
	_, err := cache.Get("key0", func() (string, error) {
		called = true
		return "again", nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestLRUOrder(t *testing.T) {
	cache := NewTTLCache[string](2, 0)
	cons := func(v string) Constructor[string] {
		return func() (string, error) { return v, nil }
	}

	_, _ = cache.Get("a", cons("a"))
	_, _ = cache.Get("b", cons("b"))
	_, _ = cache.Get("a", cons("a"))
	_, _ = cache.Get("c", cons("c"))

	called := false
	v, err := cache.Get("a", func() (string, error) {
		called = true
		return "new", nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, "a", v)
}

func TestRemoveAndClear(t *testing.T) {
	cache := NewTTLCache[string](10, 0)
	for _, k := range []string{"a", "b", "c"} {
		_, _ = cache.Get(k, func() (string, error) { return k, nil })
	}

	cache.Remove("b")
	cache.Remove("missing")
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestClearDuringCreate(t *testing.T) {
	cache := NewTTLCache[string](10, 0)

	v, err := cache.Get("a", func() (string, error) {
		cache.Clear()
		return "stale", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "stale", v)
	assert.Equal(t, 0, cache.Len())

	v, err = cache.Get("a", func() (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, 1, cache.Len())
}

func TestRemoveDuringCreate(t *testing.T) {
	cache := NewTTLCache[string](10, 0)

	_, err := cache.Get("a", func() (string, error) {
		cache.Remove("a")
		return "stale", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())

	called := false
	v, _ := cache.Get("a", func() (string, error) {
		called = true
		return "fresh", nil
	})
	assert.True(t, called)
	assert.Equal(t, "fresh", v)
}

func TestConcurrentAccess(t *testing.T) {
	cache := NewTTLCache[int](5, time.Minute)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			key := fmt.Sprintf("key%d", i%7)
			_, err := cache.Get(key, func() (int, error) {
				return i, nil
			})
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 5)
}
