package market

import (
	"sort"
	"sync"
	"time"
)

// Cache is a bounded in-memory TTL cache for market data lookups.
// It is an explicit object injected into whatever component needs it, not a
// process-wide singleton. When the size cap is hit, a sweep evicts the
// entries closest to expiry (oldest-expiry-first) down to the cleanup ratio.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
	cleanup float64 // fraction of maxSize retained after an eviction sweep
	nowFunc func() time.Time
}

type cacheEntry struct {
	data      CityMarketData
	expiresAt time.Time
}

// Default sizing for a consulting workload: a few hundred cities, hour-scale
// freshness.
const (
	DefaultTTL          = time.Hour
	DefaultMaxSize      = 256
	defaultCleanupRatio = 0.75
)

// NewCache creates a cache with the given TTL and size cap. Non-positive
// arguments fall back to the defaults.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
		cleanup: defaultCleanupRatio,
		nowFunc: time.Now,
	}
}

// Get returns the cached market data for a city, if present and unexpired.
func (c *Cache) Get(city string) (CityMarketData, bool) {
	c.mu.RLock()
	entry, ok := c.entries[city]
	c.mu.RUnlock()

	if !ok || c.nowFunc().After(entry.expiresAt) {
		return CityMarketData{}, false
	}
	return entry.data, true
}

// Put stores market data for a city, evicting oldest-expiry entries first if
// the size cap is reached.
func (c *Cache) Put(city string, data CityMarketData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[city]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}
	c.entries[city] = cacheEntry{
		data:      data,
		expiresAt: c.nowFunc().Add(c.ttl),
	}
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictLocked removes expired entries, then if still over the retention
// target removes the entries closest to expiry. Caller holds the write lock.
func (c *Cache) evictLocked() {
	now := c.nowFunc()
	for city, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, city)
		}
	}

	target := int(float64(c.maxSize) * c.cleanup)
	if len(c.entries) <= target {
		return
	}

	type expiry struct {
		city string
		at   time.Time
	}
	order := make([]expiry, 0, len(c.entries))
	for city, entry := range c.entries {
		order = append(order, expiry{city, entry.expiresAt})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].at.Before(order[j].at) })

	for _, e := range order[:len(c.entries)-target] {
		delete(c.entries, e.city)
	}
}
