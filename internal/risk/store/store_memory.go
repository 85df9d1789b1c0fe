// Package store persists risk assessments.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
	"bazaar/pkg/platform/sentinel"
)

// InMemory is the assessment store used in tests and database-less
// development runs.
type InMemory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*ports.AssessmentRecord
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[uuid.UUID]*ports.AssessmentRecord)}
}

func (s *InMemory) Save(_ context.Context, rec *ports.AssessmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return sentinel.ErrConflict
	}
	stored := *rec
	s.records[rec.ID] = &stored
	return nil
}

func (s *InMemory) AttachJustification(_ context.Context, id uuid.UUID, narrative string, generatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if rec.AIJustification != nil {
		return sentinel.ErrConflict
	}
	rec.AIJustification = &narrative
	rec.JustificationGeneratedAt = &generatedAt
	return nil
}

func (s *InMemory) ByID(_ context.Context, id uuid.UUID) (*ports.AssessmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *rec
	return &out, nil
}

// Len reports how many assessments are stored. Test helper.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
