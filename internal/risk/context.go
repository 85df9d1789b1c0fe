package risk

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one resolved transaction line after enrichment.
type LineItem struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	StoreID        string `json:"store_id"`
	StoreName      string `json:"store_name"`
}

// StoreShare aggregates a single store's slice of the transaction.
type StoreShare struct {
	ItemCount     int
	SubtotalCents int64
}

// RequestMetadata carries ambient request data used by scoring and persistence.
type RequestMetadata struct {
	UserAgent string
	IPAddress string
	Timestamp time.Time
}

// Signals holds behavioral and account signals. Every field is optional:
// nil means "unknown", which is different from zero. A factor that reads an
// unknown signal stays silent.
type Signals struct {
	SessionTokenAgeSeconds        *int64
	ConcurrentSessionCount        *int
	FailedLoginAttempts24h        *int
	AccountAgeSeconds             *int64
	AccountRole                   *string
	PastTransactionTotal          *int
	PastTransactionSuccessful     *int
	PastTransactionSuccessRatePct *float64
	RecentFailures1h              *int
	DistinctPaymentMethodsSession *int
}

// TransactionContext is the immutable input to scoring, assembled once per
// payment attempt and discarded afterwards.
type TransactionContext struct {
	UserID    *uuid.UUID
	UserEmail string
	UserRole  string

	TotalAmountCents int64
	Currency         string

	LineItems         []LineItem
	StoreDistribution map[string]StoreShare

	OrderID            *int64
	PaymentMethodID    string
	PaymentMethodIsNew bool

	Metadata RequestMetadata
	Signals  Signals
}

// TotalQuantity sums quantities across all line items.
func (tc *TransactionContext) TotalQuantity() int {
	total := 0
	for _, item := range tc.LineItems {
		total += item.Quantity
	}
	return total
}

// MaxLineQuantity returns the largest single-line quantity.
func (tc *TransactionContext) MaxLineQuantity() int {
	max := 0
	for _, item := range tc.LineItems {
		if item.Quantity > max {
			max = item.Quantity
		}
	}
	return max
}

// StoreCount returns the number of distinct stores in the transaction.
func (tc *TransactionContext) StoreCount() int {
	return len(tc.StoreDistribution)
}

// BuildStoreDistribution derives the per-store breakdown from resolved line
// items. Keys are unique store IDs; values aggregate across that store's
// lines, so the subtotal sum always equals the line item sum.
func BuildStoreDistribution(items []LineItem) map[string]StoreShare {
	dist := make(map[string]StoreShare, len(items))
	for _, item := range items {
		share := dist[item.StoreID]
		share.ItemCount += item.Quantity
		share.SubtotalCents += item.UnitPriceCents * int64(item.Quantity)
		dist[item.StoreID] = share
	}
	return dist
}
