// Package catalog reads the product/store catalog for enrichment.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"bazaar/internal/risk/ports"
)

// Postgres resolves products against the live catalog tables.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// ProductsByIDs returns the products it could find, keyed by ID. Missing IDs
// are absent from the map; the enricher keeps those lines with placeholders.
func (s *Postgres) ProductsByIDs(ctx context.Context, ids []string) (map[string]ports.Product, error) {
	if len(ids) == 0 {
		return map[string]ports.Product{}, nil
	}

	query := `
		SELECT p.id, p.name, p.price_cents, p.store_id, s.name
		FROM products p
		JOIN stores s ON s.id = p.store_id
		WHERE p.id = ANY($1)
	`
	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make(map[string]ports.Product, len(ids))
	for rows.Next() {
		var p ports.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPriceCents, &p.StoreID, &p.StoreName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
