package catalog

import "sync"

// Store holds the current catalog. Each ingest builds a complete item slice
// and publishes it with Replace; readers always see either the previous or
// the new catalog, never a half-written one.
type Store struct {
	mu    sync.RWMutex
	items []Item
}

func NewStore() *Store { return &Store{} }

// Replace swaps in a fully built catalog. The store takes ownership of items.
func (s *Store) Replace(items []Item) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Items returns the current snapshot. Callers must not mutate it.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
