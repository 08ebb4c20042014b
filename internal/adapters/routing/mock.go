package routing

import (
	"context"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// MockRouter returns a fixed leg sequence, or a canned error.
type MockRouter struct {
	Legs []domain.RouteLeg
	Err  error
	// Calls records the coordinate sequences the mock was asked to route.
	Calls [][]domain.Coordinates
}

func (m *MockRouter) Route(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	m.Calls = append(m.Calls, append([]domain.Coordinates(nil), waypoints...))
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	return ports.RouteResult{Legs: m.Legs, Geometry: append([]domain.Coordinates(nil), waypoints...)}, nil
}
