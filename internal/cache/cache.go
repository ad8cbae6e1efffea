// Package cache keeps recently fetched dashboards in memory.
// It uses patrickmn/go-cache for TTL-based expiry.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a typed, TTL-bounded in-memory store. It is safe for concurrent use.
type Cache[V any] struct {
	store *gocache.Cache
}

// New creates a cache whose entries expire after ttl. Expired entries are
// purged every cleanupInterval.
func New[V any](ttl, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		store: gocache.New(ttl, cleanupInterval),
	}
}

// Get returns the value stored under key.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	v, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.store.Flush()
}

// Len returns the number of entries, expired ones included until cleanup.
func (c *Cache[V]) Len() int {
	return c.store.ItemCount()
}
