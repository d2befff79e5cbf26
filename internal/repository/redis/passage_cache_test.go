package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassageCache_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	defer rdb.Close()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test: redis unreachable: %v", err)
	}

	c := NewPassageCache(rdb, "test")
	session := uuid.NewString()
	t.Cleanup(func() { _ = c.Delete(ctx, session) })

	_, found, err := c.Get(ctx, session)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, session, []string{"a", "b"}))

	got, found, err := c.Get(ctx, session)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)

	ttl, err := rdb.TTL(ctx, c.key(session)).Result()
	require.NoError(t, err)
	assert.Less(t, int64(ttl), int64(0), "cached passages must not expire")

	require.NoError(t, c.Delete(ctx, session))
	_, found, err = c.Get(ctx, session)
	require.NoError(t, err)
	assert.False(t, found)
}
