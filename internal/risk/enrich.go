package risk

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"bazaar/internal/risk/ports"
)

// RequestItem is a line item as supplied by the checkout payload, before any
// catalog join. Fields may be partially filled; the enricher recovers the rest.
type RequestItem struct {
	ProductID  string
	Name       string
	PriceCents int64
	Quantity   int
	StoreID    string
	StoreName  string
}

// Placeholder values used when the catalog join cannot resolve an item.
// The line is kept - a join miss must never shrink the transaction.
const (
	unknownProductName = "Unknown Product"
	unknownStoreID     = "unknown"
)

// Enricher resolves a complete, consistent set of line items and the derived
// per-store breakdown from whichever source is richest:
//
//  1. the explicit checkout item list, re-joined against the catalog,
//  2. else the persisted order's line items (price at order time),
//  3. else the user's active cart,
//  4. else nothing - scoring proceeds on the amount alone.
//
// Enrichment is read-only and never fails the request: lookup errors degrade
// to the next source or to placeholder fields, and are logged.
type Enricher struct {
	catalog ports.CatalogGateway
	orders  ports.OrdersGateway
	carts   ports.CartGateway
	logger  *slog.Logger
}

func NewEnricher(catalog ports.CatalogGateway, orders ports.OrdersGateway, carts ports.CartGateway, logger *slog.Logger) *Enricher {
	return &Enricher{
		catalog: catalog,
		orders:  orders,
		carts:   carts,
		logger:  logger,
	}
}

// Resolve produces the line items and store distribution for one transaction.
func (e *Enricher) Resolve(ctx context.Context, items []RequestItem, orderID *int64, userID *uuid.UUID) ([]LineItem, map[string]StoreShare) {
	resolved := e.resolveItems(ctx, items, orderID, userID)
	return resolved, BuildStoreDistribution(resolved)
}

func (e *Enricher) resolveItems(ctx context.Context, items []RequestItem, orderID *int64, userID *uuid.UUID) []LineItem {
	if len(items) > 0 {
		return e.joinCatalog(ctx, items)
	}

	if orderID != nil && e.orders != nil {
		orderItems, err := e.orders.ItemsByOrderID(ctx, *orderID)
		if err != nil {
			e.logger.WarnContext(ctx, "order line item lookup failed",
				"order_id", *orderID,
				"error", err,
			)
		} else if len(orderItems) > 0 {
			return fromOrderItems(orderItems)
		}
	}

	if userID != nil && e.carts != nil {
		cartItems, err := e.carts.ItemsByUser(ctx, *userID)
		if err != nil {
			e.logger.WarnContext(ctx, "cart lookup failed",
				"user_id", *userID,
				"error", err,
			)
		} else if len(cartItems) > 0 {
			return fromOrderItems(cartItems)
		}
	}

	return nil
}

// joinCatalog recovers authoritative name, price, and store for each payload
// item. A failed or partial join keeps the line with placeholder fields and
// the payload's own price; quantity always survives untouched.
func (e *Enricher) joinCatalog(ctx context.Context, items []RequestItem) []LineItem {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.ProductID != "" {
			ids = append(ids, item.ProductID)
		}
	}

	var products map[string]ports.Product
	if e.catalog != nil && len(ids) > 0 {
		var err error
		products, err = e.catalog.ProductsByIDs(ctx, ids)
		if err != nil {
			e.logger.WarnContext(ctx, "catalog join failed, keeping payload items with placeholders",
				"item_count", len(items),
				"error", err,
			)
			products = nil
		}
	}

	resolved := make([]LineItem, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		if product, ok := products[item.ProductID]; ok {
			resolved = append(resolved, LineItem{
				ProductID:      product.ID,
				Name:           product.Name,
				UnitPriceCents: product.UnitPriceCents,
				Quantity:       quantity,
				StoreID:        product.StoreID,
				StoreName:      product.StoreName,
			})
			continue
		}

		line := LineItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.PriceCents,
			Quantity:       quantity,
			StoreID:        item.StoreID,
			StoreName:      item.StoreName,
		}
		if line.Name == "" {
			line.Name = unknownProductName
		}
		if line.StoreID == "" {
			line.StoreID = unknownStoreID
		}
		resolved = append(resolved, line)
	}
	return resolved
}

func fromOrderItems(items []ports.OrderItem) []LineItem {
	resolved := make([]LineItem, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		resolved = append(resolved, LineItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       quantity,
			StoreID:        item.StoreID,
			StoreName:      item.StoreName,
		})
	}
	return resolved
}
