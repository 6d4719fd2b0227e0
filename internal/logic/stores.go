package logic

import (
	"sync"

	"citysearch/internal/domain"
)

// MemorySuggestionStore is an in-memory implementation of SuggestionStore
type MemorySuggestionStore struct {
	mu     sync.RWMutex
	items  []domain.Suggestion
	index  *CityIndex
	loaded bool
}

// NewMemorySuggestionStore creates an empty store
func NewMemorySuggestionStore() *MemorySuggestionStore {
	return &MemorySuggestionStore{
		index: NewCityIndex(nil),
	}
}

func (s *MemorySuggestionStore) All() []domain.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *MemorySuggestionStore) Lookup(city string) (domain.Suggestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index.Lookup(city)
	if !ok {
		return domain.Suggestion{}, false
	}
	return s.items[i], true
}

func (s *MemorySuggestionStore) Replace(items []domain.Suggestion) {
	// Copy so later changes to the caller's slice cannot leak in
	cp := make([]domain.Suggestion, len(items))
	copy(cp, items)
	index := NewCityIndex(cp)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cp
	s.index = index
	s.loaded = true
}

func (s *MemorySuggestionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemorySuggestionStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
