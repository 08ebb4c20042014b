package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-scheduler-service/internal/domain"
)

// RedisGeocodeCache is a Redis-backed alternative to the SQL geocode cache
// for deployments without Postgres. Entries expire so stale geocodes age
// out eventually.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: 30 * 24 * time.Hour}
}

func geocodeKey(address string) string {
	return "geocode:" + address
}

func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if c.Client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("geocode cache: address must not be empty")
	}

	raw, err := c.Client.Get(ctx, geocodeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}
	return coords, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if c.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	raw, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, geocodeKey(address), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}
	return nil
}
