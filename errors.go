package textkey

import "fmt"

// ProviderError indicates an embedding provider failure (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// StoreError indicates a semantic store failure (SQLite error, bad row, etc.).
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates the provider returned a different number of
// vectors than texts requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("embedding count mismatch: expected %d, got %d", e.Expected, e.Got)
}
