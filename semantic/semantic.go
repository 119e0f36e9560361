// Package semantic provides a semantic response cache: responses are stored
// under the fingerprint of their query text and retrieved either by exact
// fingerprint match or by embedding similarity.
package semantic

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ZaguanLabs/textkey"
)

// DefaultThreshold is the minimum cosine similarity for a semantic hit.
const DefaultThreshold = 0.92

// Entry is one cached query/response pair with its embedding.
type Entry struct {
	ID          string    // UUID
	Fingerprint string    // textkey.NormalizeAndHash of the query
	Text        string    // Normalized query text
	Embedding   []float32 // Embedding of the normalized query
	Response    string    // Cached response
	CreatedAt   time.Time
}

// Match is a successful cache lookup.
type Match struct {
	Entry      Entry
	Similarity float64 // 1.0 for exact fingerprint matches
	Exact      bool    // Whether the hit was an exact fingerprint match
}

// Store persists semantic cache entries.
type Store interface {
	// Insert stores an entry, replacing any existing entry with the same fingerprint.
	Insert(ctx context.Context, entry Entry) error

	// GetByFingerprint returns the entry with the given fingerprint, or nil.
	GetByFingerprint(ctx context.Context, fingerprint string) (*Entry, error)

	// All returns every stored entry.
	All(ctx context.Context) ([]Entry, error)

	// Close releases store resources.
	Close() error
}

// Cache is the semantic response cache.
type Cache struct {
	store     Store
	provider  textkey.EmbeddingProvider
	threshold float64
}

// CacheOption is a functional option for configuring the Cache.
type CacheOption func(*Cache)

// WithThreshold sets the minimum cosine similarity for semantic hits.
func WithThreshold(threshold float64) CacheOption {
	return func(c *Cache) {
		c.threshold = threshold
	}
}

// NewCache creates a semantic cache over the given store and embedding provider.
func NewCache(store Store, provider textkey.EmbeddingProvider, opts ...CacheOption) *Cache {
	c := &Cache{
		store:     store,
		provider:  provider,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Put caches a response for query. The query is normalized and fingerprinted;
// an entry with the same fingerprint is replaced.
func (c *Cache) Put(ctx context.Context, query, response string) (*Entry, error) {
	normalized := textkey.NormalizeText(query)

	vecs, err := c.provider.Embed(ctx, []string{normalized})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, &textkey.CountMismatchError{Expected: 1, Got: len(vecs)}
	}

	entry := Entry{
		ID:          uuid.NewString(),
		Fingerprint: textkey.NormalizeAndHash(query),
		Text:        normalized,
		Embedding:   vecs[0],
		Response:    response,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.store.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Lookup finds a cached response for query: first by exact fingerprint, then
// by cosine similarity against stored embeddings. Returns nil when nothing
// clears the threshold.
func (c *Cache) Lookup(ctx context.Context, query string) (*Match, error) {
	fingerprint := textkey.NormalizeAndHash(query)

	exact, err := c.store.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if exact != nil {
		return &Match{Entry: *exact, Similarity: 1.0, Exact: true}, nil
	}

	vecs, err := c.provider.Embed(ctx, []string{textkey.NormalizeText(query)})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, &textkey.CountMismatchError{Expected: 1, Got: len(vecs)}
	}

	entries, err := c.store.All(ctx)
	if err != nil {
		return nil, err
	}

	var best *Match
	for _, entry := range entries {
		sim := cosineSimilarity(vecs[0], entry.Embedding)
		if sim < c.threshold {
			continue
		}
		if best == nil || sim > best.Similarity {
			best = &Match{Entry: entry, Similarity: sim}
		}
	}

	return best, nil
}

// cosineSimilarity computes the cosine of the angle between a and b.
// Mismatched dimensions and zero vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
