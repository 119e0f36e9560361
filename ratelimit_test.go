package textkey

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiter_TryAcquire(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         2,
	})

	// Burst of 2 should succeed
	if !limiter.TryAcquire() {
		t.Error("First acquire should succeed")
	}
	if !limiter.TryAcquire() {
		t.Error("Second acquire should succeed")
	}

	// Third should fail (bucket empty, negligible refill)
	if limiter.TryAcquire() {
		t.Error("Third acquire should fail with empty bucket")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	// 600 RPM = 10 tokens/second
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         1,
	})

	if !limiter.TryAcquire() {
		t.Fatal("First acquire should succeed")
	}
	if limiter.TryAcquire() {
		t.Fatal("Bucket should be empty")
	}

	// Wait long enough for at least one token to refill
	time.Sleep(150 * time.Millisecond)

	if !limiter.TryAcquire() {
		t.Error("Acquire should succeed after refill")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{})

	// Default is 60 RPM with full burst bucket
	if limiter.Available() < 59 {
		t.Errorf("Expected ~60 available tokens, got %f", limiter.Available())
	}
}

func TestRateLimiter_Wait_Cancelled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 1, // Very slow refill
		BurstSize:         1,
	})

	// Drain the bucket
	if !limiter.TryAcquire() {
		t.Fatal("First acquire should succeed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	if err == nil {
		t.Error("Wait should fail when context expires before a token is available")
	}
}

func TestRateLimitedProvider(t *testing.T) {
	callCount := 0
	inner := embedFunc(func(ctx context.Context, texts []string) ([][]float32, error) {
		callCount++
		return [][]float32{{0.1}}, nil
	})

	p := NewRateLimitedProvider(inner, RateLimitConfig{
		RequestsPerMinute: 600,
		BurstSize:         5,
	})

	for i := 0; i < 3; i++ {
		if _, err := p.Embed(context.Background(), []string{"x"}); err != nil {
			t.Fatalf("Embed %d failed: %v", i, err)
		}
	}

	if callCount != 3 {
		t.Errorf("Expected 3 provider calls, got %d", callCount)
	}

	if p.Limiter() == nil {
		t.Error("Limiter() should expose the underlying limiter")
	}
}
