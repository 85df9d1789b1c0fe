// Package cart reads the user's active cart, the fallback item source.
package cart

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
)

// Postgres reads the cart_items table joined with the catalog.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) ItemsByUser(ctx context.Context, userID uuid.UUID) ([]ports.OrderItem, error) {
	query := `
		SELECT ci.product_id, p.name, p.price_cents, ci.quantity, p.store_id, st.name
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		JOIN stores st ON st.id = p.store_id
		WHERE ci.user_id = $1
		ORDER BY ci.id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	var items []ports.OrderItem
	for rows.Next() {
		var it ports.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPriceCents, &it.Quantity, &it.StoreID, &it.StoreName); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}
	return items, nil
}
