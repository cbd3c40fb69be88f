package store

import (
	"context"
	"sync"

	"github.com/i474232898/garden-planner/internal/garden"
)

// MemoryStore is a concurrency-safe in-memory garden log.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []garden.CropEntry
}

// NewMemoryStore creates a MemoryStore seeded with entries.
func NewMemoryStore(entries ...garden.CropEntry) *MemoryStore {
	return &MemoryStore{entries: append([]garden.CropEntry(nil), entries...)}
}

// List returns a copy of the log.
func (s *MemoryStore) List(_ context.Context) ([]garden.CropEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(), nil
}

// Append validates entry, adds it to the log and returns the full log.
func (s *MemoryStore) Append(_ context.Context, entry garden.CropEntry) ([]garden.CropEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return s.snapshot(), nil
}

func (s *MemoryStore) snapshot() []garden.CropEntry {
	out := make([]garden.CropEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
