package redis_limiter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter 需要真实Redis,通过 TEST_REDIS_ADDR 指定,否则跳过
func newTestLimiter(t *testing.T) (*LoginLimiter, *redis.Client) {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("未设置 TEST_REDIS_ADDR,跳过Redis测试")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis不可用: %v", err)
	}

	limiter := NewLoginLimiter(client, 3, "test_login_attempts:", time.Minute)
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return limiter, client
}

func TestLoginLimiterBlocksAfterMaxAttempts(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()
	key := "user@example.com:127.0.0.1"

	allowed, err := limiter.Allowed(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)

	for i := 0; i < 3; i++ {
		_, err := limiter.RecordFailure(ctx, key)
		require.NoError(t, err)
	}

	allowed, err = limiter.Allowed(ctx, key)
	require.NoError(t, err)
	assert.False(t, allowed)

	remaining, err := limiter.Remaining(ctx, key)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestLoginLimiterReset(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()
	key := "user@example.com:127.0.0.1"

	for i := 0; i < 3; i++ {
		_, err := limiter.RecordFailure(ctx, key)
		require.NoError(t, err)
	}

	require.NoError(t, limiter.Reset(ctx, key))

	allowed, err := limiter.Allowed(ctx, key)
	require.NoError(t, err)
	assert.True(t, allowed)
}
