package geocode

import (
	"context"

	"trip-scheduler-service/internal/domain"
)

// MockGeocoder resolves from a fixed table; unknown addresses are NotFound.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(entries map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodingError{
			Address: address,
			Kind:    domain.FailureNotFound,
		}
	}
	return c, nil
}
