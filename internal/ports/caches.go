package ports

import (
	"context"

	"trip-scheduler-service/internal/domain"
)

// GeocodeCache persists address -> coordinate resolutions across requests.
// A miss is (zero, false, nil); errors are reserved for backend failures.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, address string, coords domain.Coordinates) error
}

// LegCache persists routed legs keyed by an origin/destination coordinate
// pair and routing profile.
type LegCache interface {
	Get(ctx context.Context, from, to domain.Coordinates, profile string) (domain.RouteLeg, bool, error)
	Put(ctx context.Context, from, to domain.Coordinates, profile string, leg domain.RouteLeg) error
}
