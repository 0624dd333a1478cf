package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestRedisSummaryCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisSummaryCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "summary:1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, "summary:1", []byte(`{"status":"ok"}`), time.Minute))

	got, ok, err := c.Get(ctx, "summary:1")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"status":"ok"}`, string(got))
	require.True(t, mr.Exists("routesum:summary:1"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "summary:1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisSummaryCacheRejectsEmptyKey(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := NewRedisSummaryCache("redis://" + mr.Addr())
	require.NoError(t, err)

	_, _, err = c.Get(context.Background(), " ")
	require.Error(t, err)
	require.Error(t, c.Put(context.Background(), "", nil, 0))
}

func TestNewRedisSummaryCacheBadURL(t *testing.T) {
	_, err := NewRedisSummaryCache("not-a-url://")
	require.Error(t, err)
}

func TestMemorySummaryCacheExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c := NewMemorySummaryCache()
	c.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Put(ctx, "forever", []byte("w"), 0))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", string(got))

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	require.False(t, ok)

	_, ok, _ = c.Get(ctx, "forever")
	require.True(t, ok)
}
