package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
)

// Order is the in-memory record shape; only the fields the gateway reads.
type Order struct {
	ID        int64
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
	Items     []ports.OrderItem
}

// InMemory backs the orders gateway for tests and database-less runs.
type InMemory struct {
	mu     sync.RWMutex
	orders map[int64]Order
}

func NewInMemory() *InMemory {
	return &InMemory{orders: make(map[int64]Order)}
}

func (s *InMemory) Add(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *InMemory) ItemsByOrderID(_ context.Context, orderID int64) ([]ports.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	items := make([]ports.OrderItem, len(o.Items))
	copy(items, o.Items)
	return items, nil
}

func (s *InMemory) StatsByUser(_ context.Context, userID uuid.UUID) (ports.OrderStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats ports.OrderStats
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		stats.Total++
		if o.Status == "completed" || o.Status == "delivered" {
			stats.Successful++
		}
	}
	return stats, nil
}

func (s *InMemory) FailedCountSince(_ context.Context, userID uuid.UUID, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, o := range s.orders {
		if o.UserID != userID {
			continue
		}
		if (o.Status == "failed" || o.Status == "cancelled") && !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}
