package catalog

import (
	"context"
	"sync"

	"bazaar/internal/risk/ports"
)

// InMemory backs the catalog gateway for tests and database-less runs.
type InMemory struct {
	mu       sync.RWMutex
	products map[string]ports.Product
}

func NewInMemory() *InMemory {
	return &InMemory{products: make(map[string]ports.Product)}
}

func (s *InMemory) Add(p ports.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *InMemory) ProductsByIDs(_ context.Context, ids []string) (map[string]ports.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]ports.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}
