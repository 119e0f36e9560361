package textkey

import "sync"

// ParallelCacheLookup performs fingerprint-keyed cache lookups in parallel
// using goroutines. Texts are deduplicated by fingerprint before lookup, so
// normalization-equivalent inputs cost one cache round-trip. Returns a map of
// fingerprint to cached value, and the texts that missed in original order
// (one representative per fingerprint).
func ParallelCacheLookup(cache KeyCache, texts []string) (map[string]string, []string) {
	if cache == nil || len(texts) == 0 {
		return make(map[string]string), texts
	}

	type lookupResult struct {
		fingerprint string
		value       string
		found       bool
	}

	// Deduplicate by fingerprint first
	fingerprints := NormalizeAndHashBatch(texts)
	unique := make(map[string]string) // fingerprint -> representative text
	for i, fp := range fingerprints {
		if _, exists := unique[fp]; !exists {
			unique[fp] = texts[i]
		}
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for fp := range unique {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if val, ok := cache.Get(key); ok {
				results <- lookupResult{fingerprint: key, value: val, found: true}
			} else {
				results <- lookupResult{fingerprint: key, found: false}
			}
		}(fp)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]string)
	missed := make(map[string]bool)

	for result := range results {
		if result.found {
			hits[result.fingerprint] = result.value
		} else {
			missed[result.fingerprint] = true
		}
	}

	// Build the miss slice preserving original text order
	var misses []string
	seenMisses := make(map[string]bool)
	for i, text := range texts {
		fp := fingerprints[i]
		if missed[fp] && !seenMisses[fp] {
			misses = append(misses, text)
			seenMisses[fp] = true
		}
	}

	return hits, misses
}
