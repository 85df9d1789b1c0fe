//go:build integration

package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newRedisActivity(t *testing.T) *RedisActivity {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisActivity(client)
}

func TestRedisActivityCounters(t *testing.T) {
	ctx := context.Background()
	act := newRedisActivity(t)
	userID := uuid.New()

	n, err := act.ConcurrentSessions(ctx, userID)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, act.RecordSession(ctx, userID, "sess-1"))
	require.NoError(t, act.RecordSession(ctx, userID, "sess-2"))
	require.NoError(t, act.RecordSession(ctx, userID, "sess-2"))

	n, err = act.ConcurrentSessions(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = act.FailedLogins24h(ctx, userID)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, act.RecordFailedLogin(ctx, userID))
	require.NoError(t, act.RecordFailedLogin(ctx, userID))
	require.NoError(t, act.RecordFailedLogin(ctx, userID))

	n, err = act.FailedLogins24h(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestRedisActivityPaymentMethods(t *testing.T) {
	ctx := context.Background()
	act := newRedisActivity(t)

	require.NoError(t, act.RecordPaymentMethod(ctx, "sess-1", "pm_a"))
	require.NoError(t, act.RecordPaymentMethod(ctx, "sess-1", "pm_b"))
	require.NoError(t, act.RecordPaymentMethod(ctx, "sess-1", "pm_a"))

	n, err := act.PaymentMethodsTried(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = act.PaymentMethodsTried(ctx, "other")
	require.NoError(t, err)
	require.Zero(t, n)
}
