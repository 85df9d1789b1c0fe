// Package ports defines the read and write interfaces the risk engine depends on.
//
// The scoring pipeline itself is pure; everything that touches a database,
// cache, or broker enters through one of these interfaces so the engine can
// be exercised in tests with in-memory fakes.
package ports

//go:generate mockgen -source=ports.go -destination=../mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog row joined with its store.
type Product struct {
	ID             string
	Name           string
	UnitPriceCents int64
	StoreID        string
	StoreName      string
}

// CatalogGateway looks up authoritative product data for enrichment.
type CatalogGateway interface {
	// ProductsByIDs returns the products it could find, keyed by ID.
	// Missing IDs are simply absent from the map; that is not an error.
	ProductsByIDs(ctx context.Context, ids []string) (map[string]Product, error)
}

// OrderItem is a line item with price captured at order time.
type OrderItem struct {
	ProductID      string
	Name           string
	UnitPriceCents int64
	Quantity       int
	StoreID        string
	StoreName      string
}

// OrderStats aggregates a user's past order outcomes.
type OrderStats struct {
	Total      int
	Successful int
}

// OrdersGateway reads persisted orders for enrichment and behavioral signals.
type OrdersGateway interface {
	ItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	StatsByUser(ctx context.Context, userID uuid.UUID) (OrderStats, error)
	// FailedCountSince counts the user's failed orders created at or after since.
	FailedCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// CartGateway reads the user's active cart, the lowest-priority item source.
type CartGateway interface {
	ItemsByUser(ctx context.Context, userID uuid.UUID) ([]OrderItem, error)
}

// Account is the slice of the user record the engine needs.
type Account struct {
	ID        uuid.UUID
	Email     string
	Role      string
	CreatedAt time.Time
}

// AccountGateway reads user records and store ownership.
type AccountGateway interface {
	ByID(ctx context.Context, userID uuid.UUID) (*Account, error)
	// OwnsStore reports whether the user owns at least one store,
	// which classifies them as a vendor.
	OwnsStore(ctx context.Context, userID uuid.UUID) (bool, error)
}

// SessionActivityGateway reads live session counters.
type SessionActivityGateway interface {
	ConcurrentSessions(ctx context.Context, userID uuid.UUID) (int, error)
	FailedLogins24h(ctx context.Context, userID uuid.UUID) (int, error)
	// RecordPaymentMethod marks a payment method as tried within the session
	// and PaymentMethodsTried returns how many distinct methods the session
	// has accumulated, including the current one.
	RecordPaymentMethod(ctx context.Context, sessionID, paymentMethodID string) error
	PaymentMethodsTried(ctx context.Context, sessionID string) (int, error)
}

// AssessmentRecord is the persisted shape of one risk assessment.
// Written once; only the justification columns are filled in later.
type AssessmentRecord struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	OrderID         *int64
	PaymentIntentID string
	RiskScore       int
	Decision        string
	Confidence      float64
	AmountCents     int64
	Currency        string
	ItemCount       int
	StoreCount      int
	FactorsJSON     []byte
	UserAgent       string
	IPAddress       string
	ShippingCountry string
	ShippingState   string
	ShippingCity    string
	CreatedAt       time.Time

	AIJustification          *string
	JustificationGeneratedAt *time.Time
}

// AssessmentStore persists assessments and attaches narratives after the fact.
type AssessmentStore interface {
	Save(ctx context.Context, rec *AssessmentRecord) error
	// AttachJustification fills the narrative columns exactly once.
	// Returns sentinel.ErrNotFound if no such assessment exists and
	// sentinel.ErrConflict if a narrative is already attached.
	AttachJustification(ctx context.Context, id uuid.UUID, narrative string, generatedAt time.Time) error
	ByID(ctx context.Context, id uuid.UUID) (*AssessmentRecord, error)
}
