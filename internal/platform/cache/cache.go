// Package cache is a typed in-memory TTL cache over go-cache
package cache

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultExpiration applies when New is given a non-positive ttl
	DefaultExpiration = 10 * time.Minute
	// DefaultCleanupInterval applies when New is given a non-positive cleanup interval
	DefaultCleanupInterval = 30 * time.Minute
)

// TTL holds values of type V under string keys until they expire
// safe for concurrent use
type TTL[V any] struct {
	useCase string
	cache   *gocache.Cache
}

// New builds a cache; useCase names it in logs ("sessions", "partners")
func New[V any](useCase string, ttl, cleanup time.Duration) *TTL[V] {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	if cleanup <= 0 {
		cleanup = DefaultCleanupInterval
	}
	return &TTL[V]{
		useCase: useCase,
		cache:   gocache.New(ttl, cleanup),
	}
}

// Get retrieves an item by key
func (c *TTL[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.cache.Get(key)
	if !found {
		return zero, false
	}
	v, ok := value.(V)
	if !ok {
		logger.Named("cache").Error().Str("use_case", c.useCase).Str("key", key).Msg("wrong type in cache")
		return zero, false
	}
	return v, true
}

// GetWithRefresh retrieves an item and, when found, restarts its default ttl
func (c *TTL[V]) GetWithRefresh(key string) (V, bool) {
	v, found := c.Get(key)
	if found {
		c.cache.SetDefault(key, v)
	}
	return v, found
}

// Set stores value under key with the default ttl
func (c *TTL[V]) Set(key string, value V) { c.cache.SetDefault(key, value) }

// Delete removes keys
func (c *TTL[V]) Delete(keys ...string) {
	for _, k := range keys {
		c.cache.Delete(k)
	}
}

// OnEvicted registers fn for expiry and delete events
// fn runs outside the cache lock, from the janitor goroutine for expiries
func (c *TTL[V]) OnEvicted(fn func(key string, value V)) {
	c.cache.OnEvicted(func(k string, v any) {
		if tv, ok := v.(V); ok {
			fn(k, tv)
		}
	})
}
