package geocode

import (
	"context"
	"strings"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// CacheMetrics receives geocode cache hit/miss counts.
type CacheMetrics interface {
	GeocodeCacheHit()
	GeocodeCacheMiss()
}

// CachedGeocoder consults a persistent cache before delegating to the
// wrapped geocoder. Cache failures are soft: a read error falls through to
// the live lookup, a write error is dropped (the lookup already succeeded).
type CachedGeocoder struct {
	next    ports.Geocoder
	cache   ports.GeocodeCache
	metrics CacheMetrics
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache, metrics CacheMetrics) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: cache, metrics: metrics}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (g *CachedGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	key := normalize(address)

	if g.cache != nil {
		if coords, ok, err := g.cache.Get(ctx, key); err == nil && ok {
			if g.metrics != nil {
				g.metrics.GeocodeCacheHit()
			}
			return coords, nil
		}
		if g.metrics != nil {
			g.metrics.GeocodeCacheMiss()
		}
	}

	coords, err := g.next.Geocode(ctx, key)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if g.cache != nil {
		_ = g.cache.Put(ctx, key, coords)
	}
	return coords, nil
}
