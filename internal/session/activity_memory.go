package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryActivity backs the activity gateway when Redis is not configured.
// Counters never decay; acceptable for tests and local runs.
type MemoryActivity struct {
	mu             sync.RWMutex
	sessions       map[uuid.UUID]map[string]struct{}
	failedLogins   map[uuid.UUID]int
	paymentMethods map[string]map[string]struct{}
}

func NewMemoryActivity() *MemoryActivity {
	return &MemoryActivity{
		sessions:       make(map[uuid.UUID]map[string]struct{}),
		failedLogins:   make(map[uuid.UUID]int),
		paymentMethods: make(map[string]map[string]struct{}),
	}
}

func (a *MemoryActivity) RecordSession(_ context.Context, userID uuid.UUID, sessionID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.sessions[userID] == nil {
		a.sessions[userID] = make(map[string]struct{})
	}
	a.sessions[userID][sessionID] = struct{}{}
	return nil
}

func (a *MemoryActivity) RecordFailedLogin(_ context.Context, userID uuid.UUID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failedLogins[userID]++
	return nil
}

func (a *MemoryActivity) ConcurrentSessions(_ context.Context, userID uuid.UUID) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.sessions[userID]), nil
}

func (a *MemoryActivity) FailedLogins24h(_ context.Context, userID uuid.UUID) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.failedLogins[userID], nil
}

func (a *MemoryActivity) RecordPaymentMethod(_ context.Context, sessionID, paymentMethodID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.paymentMethods[sessionID] == nil {
		a.paymentMethods[sessionID] = make(map[string]struct{})
	}
	a.paymentMethods[sessionID][paymentMethodID] = struct{}{}
	return nil
}

func (a *MemoryActivity) PaymentMethodsTried(_ context.Context, sessionID string) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.paymentMethods[sessionID]), nil
}
