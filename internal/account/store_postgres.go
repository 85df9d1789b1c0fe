// Package account reads user records and store ownership.
package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
	"bazaar/pkg/platform/sentinel"
)

// Postgres reads the users and stores tables.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) ByID(ctx context.Context, userID uuid.UUID) (*ports.Account, error) {
	query := `SELECT id, email, role, created_at FROM users WHERE id = $1`

	var a ports.Account
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&a.ID, &a.Email, &a.Role, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &a, nil
}

func (s *Postgres) OwnsStore(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stores WHERE owner_id = $1)`

	var owns bool
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&owns); err != nil {
		return false, fmt.Errorf("query store ownership: %w", err)
	}
	return owns, nil
}
