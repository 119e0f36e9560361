// Package textkey computes deterministic cache keys for text.
package textkey

import "context"

// KeyCache is the interface for fingerprint-keyed caches.
type KeyCache interface {
	// Get retrieves a cached value. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}

// EmbeddingProvider is the interface for embedding backends.
type EmbeddingProvider interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// TextBlock is a unit of extracted content ready for fingerprinting.
type TextBlock struct {
	Text        string            // Visible text content (as found in the source)
	Fingerprint string            // NormalizeAndHash of Text
	Tag         string            // Enclosing element for HTML sources ("p", "h1", ...)
	Metadata    map[string]string // Additional info (attribute hints, position, etc.)
}

// IgnoredTags contains HTML tags whose content is never extracted as text.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
	"textarea": true,
	"noscript": true,
}
