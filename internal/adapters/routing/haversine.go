package routing

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

const defaultSpeedKmh = 70.0

// HaversineRouter estimates legs from great-circle distance at a fixed
// average speed. It needs no network and serves as the development and
// offline fallback; estimates are straight-line, not road distances.
type HaversineRouter struct {
	speedKmh float64
}

func NewHaversineRouter(speedKmh float64) *HaversineRouter {
	if speedKmh <= 0 {
		speedKmh = defaultSpeedKmh
	}
	return &HaversineRouter{speedKmh: speedKmh}
}

func (r *HaversineRouter) Route(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	if len(waypoints) < 2 {
		return ports.RouteResult{}, &domain.ContractError{
			Message: fmt.Sprintf("route needs at least 2 waypoints, got %d", len(waypoints)),
		}
	}

	result := ports.RouteResult{
		Legs:     make([]domain.RouteLeg, 0, len(waypoints)-1),
		Geometry: append([]domain.Coordinates(nil), waypoints...),
	}

	metersPerSecond := r.speedKmh * 1000 / 3600
	for i := 0; i+1 < len(waypoints); i++ {
		from := orb.Point{waypoints[i].Lon, waypoints[i].Lat}
		to := orb.Point{waypoints[i+1].Lon, waypoints[i+1].Lat}

		meters := geo.DistanceHaversine(from, to)
		result.Legs = append(result.Legs, domain.RouteLeg{
			DistanceMeters:  meters,
			DurationSeconds: meters / metersPerSecond,
		})
	}

	return result, nil
}
