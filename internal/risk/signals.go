package risk

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"bazaar/internal/risk/ports"
)

const signalTimeout = 2 * time.Second

// orderSuccessRate is only computed once enough orders exist to mean
// anything; below the sample floor the rate stays unknown.
func orderSuccessRate(stats ports.OrderStats) *float64 {
	if stats.Total < minHistorySample {
		return nil
	}
	rate := float64(stats.Successful) / float64(stats.Total) * 100
	return &rate
}

// Collector gathers behavioral and account signals. Every signal is optional
// and fetched in isolation: one failing lookup degrades precision, never
// availability, and never touches the other signals.
type Collector struct {
	accounts ports.AccountGateway
	orders   ports.OrdersGateway
	sessions ports.SessionActivityGateway
	logger   *slog.Logger
}

func NewCollector(accounts ports.AccountGateway, orders ports.OrdersGateway, sessions ports.SessionActivityGateway, logger *slog.Logger) *Collector {
	return &Collector{
		accounts: accounts,
		orders:   orders,
		sessions: sessions,
		logger:   logger,
	}
}

// Collect fans out the signal fetches and assembles whatever came back.
// Goroutines write disjoint fields of the shared Signals value, and every
// fetch swallows its own error, so the group never reports one.
func (c *Collector) Collect(ctx context.Context, userID *uuid.UUID, sessionID string, tokenIssuedAt *time.Time, now time.Time) Signals {
	var signals Signals

	if tokenIssuedAt != nil {
		age := int64(now.Sub(*tokenIssuedAt).Seconds())
		if age >= 0 {
			signals.SessionTokenAgeSeconds = &age
		}
	}

	ctx, cancel := context.WithTimeout(ctx, signalTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if userID != nil && c.accounts != nil {
		uid := *userID
		g.Go(func() error {
			c.collectAccount(ctx, uid, now, &signals)
			return nil
		})
	}
	if userID != nil && c.orders != nil {
		uid := *userID
		g.Go(func() error {
			c.collectOrderHistory(ctx, uid, &signals)
			return nil
		})
		g.Go(func() error {
			c.collectRecentFailures(ctx, uid, now, &signals)
			return nil
		})
	}
	if userID != nil && c.sessions != nil {
		uid := *userID
		g.Go(func() error {
			c.collectSessionActivity(ctx, uid, &signals)
			return nil
		})
	}
	if sessionID != "" && c.sessions != nil {
		g.Go(func() error {
			c.collectPaymentMethods(ctx, sessionID, &signals)
			return nil
		})
	}

	_ = g.Wait()
	return signals
}

func (c *Collector) collectAccount(ctx context.Context, userID uuid.UUID, now time.Time, signals *Signals) {
	account, err := c.accounts.ByID(ctx, userID)
	if err != nil {
		c.logger.DebugContext(ctx, "account lookup failed", "user_id", userID, "error", err)
		return
	}

	age := int64(now.Sub(account.CreatedAt).Seconds())
	if age >= 0 {
		signals.AccountAgeSeconds = &age
	}

	role := account.Role
	if owns, err := c.accounts.OwnsStore(ctx, userID); err != nil {
		c.logger.DebugContext(ctx, "store ownership lookup failed", "user_id", userID, "error", err)
	} else if owns {
		role = "vendor"
	}
	if role == "" {
		role = "customer"
	}
	signals.AccountRole = &role
}

func (c *Collector) collectOrderHistory(ctx context.Context, userID uuid.UUID, signals *Signals) {
	stats, err := c.orders.StatsByUser(ctx, userID)
	if err != nil {
		c.logger.DebugContext(ctx, "order stats lookup failed", "user_id", userID, "error", err)
		return
	}
	total := stats.Total
	successful := stats.Successful
	signals.PastTransactionTotal = &total
	signals.PastTransactionSuccessful = &successful
	signals.PastTransactionSuccessRatePct = orderSuccessRate(stats)
}

func (c *Collector) collectRecentFailures(ctx context.Context, userID uuid.UUID, now time.Time, signals *Signals) {
	count, err := c.orders.FailedCountSince(ctx, userID, now.Add(-time.Hour))
	if err != nil {
		c.logger.DebugContext(ctx, "recent failure lookup failed", "user_id", userID, "error", err)
		return
	}
	signals.RecentFailures1h = &count
}

func (c *Collector) collectSessionActivity(ctx context.Context, userID uuid.UUID, signals *Signals) {
	if count, err := c.sessions.ConcurrentSessions(ctx, userID); err != nil {
		c.logger.DebugContext(ctx, "concurrent session lookup failed", "user_id", userID, "error", err)
	} else {
		signals.ConcurrentSessionCount = &count
	}

	if count, err := c.sessions.FailedLogins24h(ctx, userID); err != nil {
		c.logger.DebugContext(ctx, "failed login lookup failed", "user_id", userID, "error", err)
	} else {
		signals.FailedLoginAttempts24h = &count
	}
}

func (c *Collector) collectPaymentMethods(ctx context.Context, sessionID string, signals *Signals) {
	count, err := c.sessions.PaymentMethodsTried(ctx, sessionID)
	if err != nil {
		c.logger.DebugContext(ctx, "payment method count lookup failed", "session_id", sessionID, "error", err)
		return
	}
	signals.DistinctPaymentMethodsSession = &count
}
