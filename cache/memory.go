package cache

import (
	"sync"
	"time"
)

// cacheEntry holds a cached value with its write and last-access times.
type cacheEntry struct {
	value      string
	timestamp  time.Time
	lastAccess time.Time
}

// InMemoryCache is a thread-safe in-memory cache with TTL support and an
// optional entry limit. When the limit is exceeded, least-recently-accessed
// entries are evicted first.
type InMemoryCache struct {
	cache      map[string]cacheEntry
	mu         sync.RWMutex
	ttl        time.Duration
	maxEntries int
}

// NewInMemoryCache creates a new in-memory cache with the specified TTL.
// If ttlSeconds is 0 or negative, entries never expire.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0 // No expiration
	}
	return &InMemoryCache{
		cache: make(map[string]cacheEntry),
		ttl:   ttl,
	}
}

// WithMaxEntries bounds the cache size. Exceeding the bound evicts the
// least-recently-accessed entries. A limit of 0 or less means unbounded.
func (c *InMemoryCache) WithMaxEntries(n int) *InMemoryCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxEntries = n
	return c
}

// Get retrieves a value from the cache.
// Returns the value and true if found and not expired, empty string and false otherwise.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	// Check TTL if enabled
	if c.ttl > 0 && time.Since(entry.timestamp) > c.ttl {
		// Entry expired - clean it up
		c.mu.Lock()
		delete(c.cache, key)
		c.mu.Unlock()
		return "", false
	}

	// Touch for LRU ordering
	c.mu.Lock()
	if current, still := c.cache[key]; still {
		current.lastAccess = time.Now()
		c.cache[key] = current
	}
	c.mu.Unlock()

	return entry.value, true
}

// Set stores a value in the cache.
func (c *InMemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.cache[key] = cacheEntry{
		value:      value,
		timestamp:  now,
		lastAccess: now,
	}

	if c.maxEntries > 0 && len(c.cache) > c.maxEntries {
		c.evictLRU()
	}
	return nil
}

// evictLRU removes least-recently-accessed entries until the cache fits the
// bound (must be called with the write lock held).
func (c *InMemoryCache) evictLRU() {
	for len(c.cache) > c.maxEntries {
		var oldestKey string
		var oldest time.Time
		first := true
		for key, entry := range c.cache {
			if first || entry.lastAccess.Before(oldest) {
				oldestKey = key
				oldest = entry.lastAccess
				first = false
			}
		}
		delete(c.cache, oldestKey)
	}
}

// Len returns the number of entries in the cache (including expired ones).
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Clear removes all entries from the cache.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheEntry)
}

// Entries returns all non-expired entries as key-value pairs.
// This is used for cache export.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string)
	now := time.Now()

	for key, entry := range c.cache {
		// Skip expired entries
		if c.ttl > 0 && now.Sub(entry.timestamp) > c.ttl {
			continue
		}
		result[key] = entry.value
	}

	return result
}

// Verify InMemoryCache implements KeyCache
var _ KeyCache = (*InMemoryCache)(nil)
