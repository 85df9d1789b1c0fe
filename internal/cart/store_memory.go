package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
)

// InMemory backs the cart gateway for tests and database-less runs.
type InMemory struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]ports.OrderItem
}

func NewInMemory() *InMemory {
	return &InMemory{carts: make(map[uuid.UUID][]ports.OrderItem)}
}

func (s *InMemory) SetCart(userID uuid.UUID, items []ports.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = items
}

func (s *InMemory) ItemsByUser(_ context.Context, userID uuid.UUID) ([]ports.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OrderItem, len(s.carts[userID]))
	copy(items, s.carts[userID])
	return items, nil
}
