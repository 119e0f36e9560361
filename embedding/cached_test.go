package embedding

import (
	"context"
	"testing"

	"github.com/ZaguanLabs/textkey/cache"
)

func TestCachedProvider_CacheHit(t *testing.T) {
	mock := NewMockProvider()
	p := NewCachedProvider(mock, cache.NewInMemoryCache(0))

	ctx := context.Background()

	first, err := p.Embed(ctx, []string{"Hello World"})
	if err != nil {
		t.Fatalf("First Embed failed: %v", err)
	}
	if mock.CallCount != 1 {
		t.Fatalf("Expected 1 upstream call, got %d", mock.CallCount)
	}

	// Same text again: served from cache, no upstream call
	second, err := p.Embed(ctx, []string{"Hello World"})
	if err != nil {
		t.Fatalf("Second Embed failed: %v", err)
	}
	if mock.CallCount != 1 {
		t.Errorf("Expected cached result, upstream called %d times", mock.CallCount)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatal("Expected one vector per call")
	}
	for i := range first[0] {
		if first[0][i] != second[0][i] {
			t.Fatalf("Cached vector differs: %v vs %v", first[0], second[0])
		}
	}
}

func TestCachedProvider_EquivalentTextsShareEntry(t *testing.T) {
	mock := NewMockProvider()
	p := NewCachedProvider(mock, cache.NewInMemoryCache(0))

	ctx := context.Background()

	if _, err := p.Embed(ctx, []string{"hello world"}); err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	// Whitespace/case variants hit the same cache entry
	if _, err := p.Embed(ctx, []string{"  Hello   WORLD  "}); err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if mock.CallCount != 1 {
		t.Errorf("Equivalent text should be served from cache, upstream called %d times", mock.CallCount)
	}
}

func TestCachedProvider_MixedBatch(t *testing.T) {
	mock := NewMockProvider()
	p := NewCachedProvider(mock, cache.NewInMemoryCache(0))

	ctx := context.Background()

	if _, err := p.Embed(ctx, []string{"alpha"}); err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	mock.Reset()

	vecs, err := p.Embed(ctx, []string{"ALPHA", "beta", "gamma", "Beta"})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}

	if len(vecs) != 4 {
		t.Fatalf("Expected 4 vectors, got %d", len(vecs))
	}
	for i, vec := range vecs {
		if len(vec) == 0 {
			t.Errorf("vector %d is empty", i)
		}
	}

	// Only the two unique misses go upstream
	if mock.CallCount != 1 {
		t.Fatalf("Expected 1 upstream call, got %d", mock.CallCount)
	}
	if len(mock.LastTexts) != 2 {
		t.Errorf("Expected 2 miss texts upstream, got %v", mock.LastTexts)
	}
	if mock.LastTexts[0] != "beta" || mock.LastTexts[1] != "gamma" {
		t.Errorf("Miss order not preserved: %v", mock.LastTexts)
	}

	// beta and Beta must resolve to the same vector
	for i := range vecs[1] {
		if vecs[1][i] != vecs[3][i] {
			t.Fatalf("Equivalent batch items got different vectors: %v vs %v", vecs[1], vecs[3])
		}
	}
}

func TestCachedProvider_Stats(t *testing.T) {
	mock := NewMockProvider()
	p := NewCachedProvider(mock, cache.NewInMemoryCache(0))

	ctx := context.Background()

	p.Embed(ctx, []string{"one", "two"})     // 2 misses
	p.Embed(ctx, []string{"one", "three"})   // 1 hit, 1 miss
	p.Embed(ctx, []string{"TWO", " three "}) // 2 hits

	hits, misses := p.Stats()
	if hits != 3 {
		t.Errorf("hits = %d, want 3", hits)
	}
	if misses != 3 {
		t.Errorf("misses = %d, want 3", misses)
	}
}

func TestCachedProvider_Empty(t *testing.T) {
	mock := NewMockProvider()
	p := NewCachedProvider(mock, cache.NewInMemoryCache(0))

	vecs, err := p.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vecs) != 0 {
		t.Errorf("Expected no vectors, got %d", len(vecs))
	}
	if mock.CallCount != 0 {
		t.Errorf("Upstream should not be called for empty input")
	}
}
