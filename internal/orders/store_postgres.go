// Package orders reads persisted orders for enrichment and history signals.
package orders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
)

// Postgres reads the orders and order_items tables.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) ItemsByOrderID(ctx context.Context, orderID int64) ([]ports.OrderItem, error) {
	query := `
		SELECT oi.product_id, oi.product_name, oi.unit_price_cents, oi.quantity, oi.store_id, st.name
		FROM order_items oi
		JOIN stores st ON st.id = oi.store_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`
	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []ports.OrderItem
	for rows.Next() {
		var it ports.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPriceCents, &it.Quantity, &it.StoreID, &it.StoreName); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

func (s *Postgres) StatsByUser(ctx context.Context, userID uuid.UUID) (ports.OrderStats, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status IN ('completed', 'delivered'))
		FROM orders
		WHERE user_id = $1
	`
	var stats ports.OrderStats
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&stats.Total, &stats.Successful); err != nil {
		return ports.OrderStats{}, fmt.Errorf("query order stats: %w", err)
	}
	return stats, nil
}

func (s *Postgres) FailedCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = $1 AND status IN ('failed', 'cancelled') AND created_at >= $2
	`
	var n int
	if err := s.db.QueryRowContext(ctx, query, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("query failed orders: %w", err)
	}
	return n, nil
}
