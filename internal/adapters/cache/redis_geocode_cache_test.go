package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-scheduler-service/internal/domain"
)

func redisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisGeocodeCache(client)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()

	coords := domain.Coordinates{Lat: 49.1951, Lon: 16.6068}
	require.NoError(t, c.Put(ctx, "Brno", coords))

	got, ok, err := c.Get(ctx, "Brno")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, coords, got)
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := redisCache(t)

	_, ok, err := c.Get(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGeocodeCacheOverwrite(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "Brno", domain.Coordinates{Lat: 1, Lon: 2}))
	require.NoError(t, c.Put(ctx, "Brno", domain.Coordinates{Lat: 49.1951, Lon: 16.6068}))

	got, ok, err := c.Get(ctx, "Brno")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 49.1951, got.Lat)
}

func TestRedisGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "  ")
	assert.Error(t, err)
	assert.Error(t, c.Put(ctx, "", domain.Coordinates{}))
}

func TestRedisGeocodeCacheSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	c := NewRedisGeocodeCache(client)

	require.NoError(t, c.Put(context.Background(), "Brno", domain.Coordinates{Lat: 1, Lon: 2}))

	mr.FastForward(c.TTL * 2)
	_, ok, err := c.Get(context.Background(), "Brno")
	require.NoError(t, err)
	assert.False(t, ok, "entries must expire")
}
