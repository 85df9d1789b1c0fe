package account

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
	"bazaar/pkg/platform/sentinel"
)

// InMemory backs the account gateway for tests and database-less runs.
type InMemory struct {
	mu          sync.RWMutex
	accounts    map[uuid.UUID]ports.Account
	storeOwners map[uuid.UUID]bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		accounts:    make(map[uuid.UUID]ports.Account),
		storeOwners: make(map[uuid.UUID]bool),
	}
}

func (s *InMemory) Add(a ports.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
}

func (s *InMemory) GrantStore(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeOwners[userID] = true
}

func (s *InMemory) ByID(_ context.Context, userID uuid.UUID) (*ports.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &a, nil
}

func (s *InMemory) OwnsStore(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storeOwners[userID], nil
}
