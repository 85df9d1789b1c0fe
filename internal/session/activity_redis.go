// Package session tracks live session activity counters.
//
// The risk engine reads them as behavioral signals; the auth surface writes
// them as logins succeed or fail. Counters live in Redis with TTLs so they
// decay without a sweeper.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionSetTTL     = 24 * time.Hour
	failedLoginWindow = 24 * time.Hour
	paymentMethodTTL  = 2 * time.Hour
)

// RedisActivity stores session counters in Redis.
type RedisActivity struct {
	client *redis.Client
}

func NewRedisActivity(client *redis.Client) *RedisActivity {
	return &RedisActivity{client: client}
}

func sessionsKey(userID uuid.UUID) string {
	return "sessions:user:" + userID.String()
}

func failedLoginsKey(userID uuid.UUID) string {
	return "failed_logins:user:" + userID.String()
}

func paymentMethodsKey(sessionID string) string {
	return "payment_methods:session:" + sessionID
}

// RecordSession marks a session as live for the user. Sessions age out of
// the set with the TTL rather than on logout, which overcounts slightly in
// favor of caution.
func (a *RedisActivity) RecordSession(ctx context.Context, userID uuid.UUID, sessionID string) error {
	key := sessionsKey(userID)
	pipe := a.client.TxPipeline()
	pipe.SAdd(ctx, key, sessionID)
	pipe.Expire(ctx, key, sessionSetTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// RecordFailedLogin bumps the user's rolling failed-login counter.
func (a *RedisActivity) RecordFailedLogin(ctx context.Context, userID uuid.UUID) error {
	key := failedLoginsKey(userID)
	pipe := a.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, failedLoginWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record failed login: %w", err)
	}
	return nil
}

func (a *RedisActivity) ConcurrentSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := a.client.SCard(ctx, sessionsKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return int(n), nil
}

func (a *RedisActivity) FailedLogins24h(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := a.client.Get(ctx, failedLoginsKey(userID)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count failed logins: %w", err)
	}
	return n, nil
}

func (a *RedisActivity) RecordPaymentMethod(ctx context.Context, sessionID, paymentMethodID string) error {
	key := paymentMethodsKey(sessionID)
	pipe := a.client.TxPipeline()
	pipe.SAdd(ctx, key, paymentMethodID)
	pipe.Expire(ctx, key, paymentMethodTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record payment method: %w", err)
	}
	return nil
}

func (a *RedisActivity) PaymentMethodsTried(ctx context.Context, sessionID string) (int, error) {
	n, err := a.client.SCard(ctx, paymentMethodsKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count payment methods: %w", err)
	}
	return int(n), nil
}
