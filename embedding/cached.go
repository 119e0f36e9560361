package embedding

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ZaguanLabs/textkey"
)

// CachedProvider wraps a Provider with a fingerprint-keyed cache so that
// normalization-equivalent texts ("Hello  World" and "hello world") share one
// stored embedding and one upstream call. Cached vectors are stored as JSON
// under the textkey fingerprint of the text.
type CachedProvider struct {
	provider Provider
	cache    textkey.KeyCache

	mu     sync.Mutex
	hits   int
	misses int
}

// NewCachedProvider creates a provider that consults cache before the
// upstream provider.
func NewCachedProvider(provider Provider, cache textkey.KeyCache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// Embed returns one vector per input text, serving from the cache where
// possible and requesting only the misses upstream in a single batch.
func (p *CachedProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	fingerprints := textkey.NormalizeAndHashBatch(texts)
	vectors := make([][]float32, len(texts))

	// Collect misses, one upstream slot per unique fingerprint
	var missTexts []string
	missSlot := make(map[string]int) // fingerprint -> index into missTexts
	for i, fp := range fingerprints {
		if vec, ok := p.lookup(fp); ok {
			vectors[i] = vec
			continue
		}
		if _, queued := missSlot[fp]; !queued {
			missSlot[fp] = len(missTexts)
			missTexts = append(missTexts, texts[i])
		}
	}

	p.mu.Lock()
	p.hits += len(texts) - countMisses(fingerprints, missSlot)
	p.misses += countMisses(fingerprints, missSlot)
	p.mu.Unlock()

	if len(missTexts) == 0 {
		return vectors, nil
	}

	fetched, err := p.provider.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missTexts) {
		return nil, &textkey.CountMismatchError{
			Expected: len(missTexts),
			Got:      len(fetched),
		}
	}

	for fp, slot := range missSlot {
		p.store(fp, fetched[slot])
	}
	for i, fp := range fingerprints {
		if vectors[i] == nil {
			vectors[i] = fetched[missSlot[fp]]
		}
	}

	return vectors, nil
}

// countMisses counts how many input positions resolved to a missed fingerprint.
func countMisses(fingerprints []string, missSlot map[string]int) int {
	n := 0
	for _, fp := range fingerprints {
		if _, missed := missSlot[fp]; missed {
			n++
		}
	}
	return n
}

// Stats returns cumulative cache hit and miss counts by input position.
func (p *CachedProvider) Stats() (hits, misses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}

func (p *CachedProvider) lookup(fingerprint string) ([]float32, bool) {
	raw, ok := p.cache.Get(fingerprint)
	if !ok {
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal([]byte(raw), &vec); err != nil || vec == nil {
		// Corrupt entry, treat as miss so it gets overwritten
		return nil, false
	}
	return vec, true
}

func (p *CachedProvider) store(fingerprint string, vec []float32) {
	raw, err := json.Marshal(vec)
	if err != nil {
		return
	}
	_ = p.cache.Set(fingerprint, string(raw)) // Ignore cache set errors
}

// Verify CachedProvider implements Provider
var _ Provider = (*CachedProvider)(nil)
