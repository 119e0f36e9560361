// Package cache provides fingerprint-keyed cache implementations.
package cache

// KeyCache is the interface for fingerprint-keyed caching.
type KeyCache interface {
	// Get retrieves a cached value. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}
