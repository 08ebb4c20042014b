package ports

import (
	"context"

	"trip-scheduler-service/internal/domain"
)

// RouteResult is the routed path over an ordered coordinate sequence.
// Legs align positionally with consecutive input pairs: len(Legs) equals
// len(input) - 1. Geometry is optional display data and may be nil.
type RouteResult struct {
	Legs     []domain.RouteLeg
	Geometry []domain.Coordinates
}

// Router computes driving legs for an ordered sequence of coordinates
// (length >= 2). Reordering the input between geocoding and routing is a
// correctness bug: leg i is consumed as the travel into waypoint i+1.
type Router interface {
	Route(ctx context.Context, waypoints []domain.Coordinates) (RouteResult, error)
}
