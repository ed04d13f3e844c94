package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL applies to Set.
const DefaultTTL = time.Hour

// Cache is a named, size-bounded in-memory cache
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	cost func(T) int64
	name string
}

// New creates a cache whose entries are weighed with costFunc
func New[T any](name string, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // keys to track frequency of
		MaxCost:     1 << 24, // 16MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		cost: costFunc,
		name: name,
	}, nil
}

// Name returns the cache's display name
func (c *Cache[T]) Name() string {
	return c.name
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with DefaultTTL. Like ristretto, the write is applied asynchronously
// and may be dropped under contention.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.SetWithTTL(key, value, DefaultTTL)
}

// SetWithTTL stores a value that expires after ttl
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, c.cost(value), ttl)
}

// Delete removes a key
func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until pending writes are applied
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns counters for the health endpoint
func (c *Cache[T]) Stats() map[string]any {
	m := c.impl.Metrics

	hitRate := 0.0
	total := m.Hits() + m.Misses()
	if total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return map[string]any{
		"cache":         c.name,
		"hits":          m.Hits(),
		"misses":        m.Misses(),
		"hit_rate":      hitRate,
		"keys_added":    m.KeysAdded(),
		"keys_evicted":  m.KeysEvicted(),
		"sets_dropped":  m.SetsDropped(),
		"sets_rejected": m.SetsRejected(),
		"cost_used":     m.CostAdded() - m.CostEvicted(),
	}
}
