// Package cache provides an optional in-memory cache for speaker responses.
// It uses patrickmn/go-cache for TTL-based expiry. A Cache created with a
// zero TTL is disabled: every lookup misses and writes are dropped, so each
// request reads the database.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Key prefixes for cached speaker envelopes.
const (
	KeyAll          = "speakers:all"
	KeySearchPrefix = "speakers:search:"
)

// Cache wraps go-cache. The zero value and a nil *Cache are disabled caches.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache whose entries live for ttl. Expired entries are purged
// every 2*ttl. A ttl <= 0 returns a disabled cache.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	return &Cache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Enabled reports whether the cache stores anything.
func (c *Cache) Enabled() bool {
	return c != nil && c.store != nil
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	if !c.Enabled() {
		return nil, false
	}
	return c.store.Get(key)
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value any) {
	if !c.Enabled() {
		return
	}
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	if !c.Enabled() {
		return
	}
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	if !c.Enabled() {
		return
	}
	c.store.Flush()
}

// ItemCount returns the number of items in the cache.
func (c *Cache) ItemCount() int {
	if !c.Enabled() {
		return 0
	}
	return c.store.ItemCount()
}

// Stats returns cache statistics.
type Stats struct {
	Enabled   bool `json:"enabled"`
	ItemCount int  `json:"item_count"`
}

// GetStats returns current cache statistics.
func (c *Cache) GetStats() Stats {
	return Stats{
		Enabled:   c.Enabled(),
		ItemCount: c.ItemCount(),
	}
}
