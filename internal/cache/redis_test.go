package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/farecompare/config"
	"github.com/Domenick1991/farecompare/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:0"}, time.Minute)
	defer c.Close()

	assert.NotNil(t, c)
	assert.Equal(t, time.Minute, c.ttl)
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "127.0.0.1:1"}, time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	flights, hit, err := c.GetSorted(ctx, "all")
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Nil(t, flights)
	assert.Error(t, c.Ping(ctx))
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	flights := []domain.Flight{
		{ID: "IN303", Airline: "IndiGo", Source: "Delhi", Destination: "Mumbai", Fare: 2800, Duration: "2h 10m", DepartureTime: "10:00 AM"},
		{ID: "AI101", Airline: "Air India", Source: "Delhi", Destination: "Mumbai", Fare: 4500.5, Duration: "2h 15m", DepartureTime: "06:00 AM"},
	}
	require.NoError(t, c.SetSorted(ctx, "v1:all", flights))

	got, hit, err := c.GetSorted(ctx, "v1:all")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, flights, got)

	assert.True(t, mr.Exists(keyPrefix+"v1:all"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"v1:all"))
}

func TestRedisCache_EmptyView(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.SetSorted(ctx, "v1:route", []domain.Flight{}))

	got, hit, err := c.GetSorted(ctx, "v1:route")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	got, hit, err := c.GetSorted(context.Background(), "missing")

	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, got)
}

func TestRedisCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.SetSorted(ctx, "v1:all", []domain.Flight{{ID: "A", Fare: 1}}))
	mr.FastForward(31 * time.Second)

	_, hit, err := c.GetSorted(ctx, "v1:all")
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_ZeroTTLStillExpires(t *testing.T) {
	c, mr := newTestCache(t, 0)

	require.NoError(t, c.SetSorted(context.Background(), "v1:all", []domain.Flight{{ID: "A", Fare: 1}}))

	assert.Equal(t, defaultTTL, mr.TTL(keyPrefix+"v1:all"))
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(keyPrefix+"v1:all", "not json"))

	_, hit, err := c.GetSorted(context.Background(), "v1:all")

	assert.Error(t, err)
	assert.False(t, hit)
}
