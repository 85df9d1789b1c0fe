// Command seed loads a small demo marketplace: a vendor with two stores,
// a long-standing customer with order history, and a brand new account.
// Intended for local development against a migrated database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := seed(ctx, db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed complete")
}

type seedUser struct {
	id        uuid.UUID
	email     string
	password  string
	role      string
	createdAt time.Time
}

func seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	vendor := seedUser{uuid.New(), "vendor@bazaar.local", "vendor-password", "customer", now.Add(-400 * 24 * time.Hour)}
	shopper := seedUser{uuid.New(), "shopper@bazaar.local", "shopper-password", "customer", now.Add(-180 * 24 * time.Hour)}
	newcomer := seedUser{uuid.New(), "newcomer@bazaar.local", "newcomer-password", "customer", now.Add(-2 * 24 * time.Hour)}

	for _, u := range []seedUser{vendor, shopper, newcomer} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
			u.id, u.email, string(hash), u.role, u.createdAt,
		); err != nil {
			return fmt.Errorf("insert user %s: %w", u.email, err)
		}
	}

	stores := []struct {
		id, name string
	}{
		{"store-ceramics", "Northtown Ceramics"},
		{"store-prints", "Harbor Prints"},
	}
	for _, s := range stores {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stores (id, owner_id, name, created_at) VALUES ($1, $2, $3, $4)`,
			s.id, vendor.id, s.name, vendor.createdAt,
		); err != nil {
			return fmt.Errorf("insert store %s: %w", s.id, err)
		}
	}

	products := []struct {
		id, storeID, name string
		priceCents        int64
	}{
		{"prod-mug", "store-ceramics", "Ceramic Mug", 1800},
		{"prod-vase", "store-ceramics", "Stoneware Vase", 5200},
		{"prod-bowl", "store-ceramics", "Serving Bowl", 3400},
		{"prod-poster", "store-prints", "Harbor Poster", 1200},
		{"prod-print", "store-prints", "Framed Print", 7500},
	}
	for _, p := range products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, store_id, name, price_cents, created_at) VALUES ($1, $2, $3, $4, $5)`,
			p.id, p.storeID, p.name, p.priceCents, vendor.createdAt,
		); err != nil {
			return fmt.Errorf("insert product %s: %w", p.id, err)
		}
	}

	// Shopper history: eight delivered orders, one failed, enough for the
	// history factors to engage.
	for i := 0; i < 8; i++ {
		if err := insertOrder(ctx, tx, shopper.id, "delivered", 1800, now.Add(-time.Duration(20*(i+1))*24*time.Hour)); err != nil {
			return err
		}
	}
	if err := insertOrder(ctx, tx, shopper.id, "failed", 5200, now.Add(-6*24*time.Hour)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity) VALUES ($1, $2, $3)`,
		shopper.id, "prod-poster", 2,
	); err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}

	return tx.Commit()
}

func insertOrder(ctx context.Context, tx *sql.Tx, userID uuid.UUID, status string, amountCents int64, createdAt time.Time) error {
	var orderID int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, status, amount_cents, currency, created_at)
		 VALUES ($1, $2, $3, 'USD', $4) RETURNING id`,
		userID, status, amountCents, createdAt,
	).Scan(&orderID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO order_items (order_id, product_id, product_name, unit_price_cents, quantity, store_id)
		 VALUES ($1, 'prod-mug', 'Ceramic Mug', $2, 1, 'store-ceramics')`,
		orderID, amountCents,
	); err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}
