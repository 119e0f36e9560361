package semantic

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry // keyed by fingerprint
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Insert stores an entry, replacing any existing entry with the same fingerprint.
func (s *MemoryStore) Insert(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Fingerprint] = entry
	return nil
}

// GetByFingerprint returns the entry with the given fingerprint, or nil.
func (s *MemoryStore) GetByFingerprint(ctx context.Context, fingerprint string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[fingerprint]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// All returns every stored entry ordered by creation time.
func (s *MemoryStore) All(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
