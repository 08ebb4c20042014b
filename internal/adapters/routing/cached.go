package routing

import (
	"context"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// CachedRouter serves routes from a pairwise leg cache when every
// consecutive pair is present, otherwise delegates to the wrapped router
// and writes the fresh legs back. Cache-served results carry no geometry.
//
// Pairs are keyed on exact coordinates; geocoding is deterministic per
// address so repeated plans over the same addresses hit.
type CachedRouter struct {
	next    ports.Router
	cache   ports.LegCache
	profile string
}

func NewCachedRouter(next ports.Router, cache ports.LegCache) *CachedRouter {
	return &CachedRouter{next: next, cache: cache, profile: "driving"}
}

func (r *CachedRouter) Route(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	if r.cache != nil && len(waypoints) >= 2 {
		legs := make([]domain.RouteLeg, 0, len(waypoints)-1)
		allHit := true
		for i := 0; i+1 < len(waypoints); i++ {
			leg, ok, err := r.cache.Get(ctx, waypoints[i], waypoints[i+1], r.profile)
			if err != nil || !ok {
				allHit = false
				break
			}
			legs = append(legs, leg)
		}
		if allHit {
			return ports.RouteResult{Legs: legs}, nil
		}
	}

	result, err := r.next.Route(ctx, waypoints)
	if err != nil {
		return ports.RouteResult{}, err
	}

	if r.cache != nil && len(result.Legs) == len(waypoints)-1 {
		for i, leg := range result.Legs {
			_ = r.cache.Put(ctx, waypoints[i], waypoints[i+1], r.profile, leg)
		}
	}

	return result, nil
}
