package util

import (
	"container/list"
	"sync"
	"time"
)

type (
	// TTLCache is a size-bounded LRU cache whose entries also expire after a
	// fixed time to live. A zero TTL keeps entries until they are evicted
	TTLCache[T any] struct {
		cache   map[string]*list.Element
		lru     *list.List
		now     func() time.Time
		maxSize int
		ttl     time.Duration
		gen     uint64
		mu      sync.Mutex
	}

	Constructor[T any] func() (T, error)

	cacheEntry[T any] struct {
		expires time.Time
		value   T
		key     string
	}
)

func NewTTLCache[T any](maxSize int, ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		cache:   map[string]*list.Element{},
		lru:     list.New(),
		now:     time.Now,
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the live entry for key, calling create to fill a miss.
// Constructor errors are returned and never cached. A value created while
// Remove or Clear ran is returned but not stored
func (c *TTLCache[T]) Get(key string, create Constructor[T]) (T, error) {
	value, gen, ok := c.lookup(key)
	if ok {
		return value, nil
	}

	value, err := create()
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return value, nil
	}

	if elem, ok := c.cache[key]; ok {
		entry := elem.Value.(*cacheEntry[T])
		if !c.expired(entry) {
			c.lru.MoveToFront(elem)
			return entry.value, nil
		}
		c.remove(elem)
	}

	entry := &cacheEntry[T]{key: key, value: value}
	if c.ttl > 0 {
		entry.expires = c.now().Add(c.ttl)
	}
	c.cache[key] = c.lru.PushFront(entry)

	for c.lru.Len() > c.maxSize {
		c.remove(c.lru.Back())
	}

	return value, nil
}

// Remove drops a single entry
func (c *TTLCache[T]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if elem, ok := c.cache[key]; ok {
		c.remove(elem)
	}
}

// Clear drops every entry
func (c *TTLCache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cache = map[string]*list.Element{}
	c.lru.Init()
}

// Len returns the number of entries, including any that have expired but
// not yet been collected
func (c *TTLCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *TTLCache[T]) lookup(key string) (T, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	elem, ok := c.cache[key]
	if !ok {
		return zero, c.gen, false
	}
	entry := elem.Value.(*cacheEntry[T])
	if c.expired(entry) {
		c.remove(elem)
		return zero, c.gen, false
	}
	c.lru.MoveToFront(elem)
	return entry.value, c.gen, true
}

func (c *TTLCache[T]) expired(e *cacheEntry[T]) bool {
	return !e.expires.IsZero() && !c.now().Before(e.expires)
}

func (c *TTLCache[T]) remove(elem *list.Element) {
	if elem == nil {
		return
	}
	c.lru.Remove(elem)
	delete(c.cache, elem.Value.(*cacheEntry[T]).key)
}
