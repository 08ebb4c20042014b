package ports

import (
	"context"

	"trip-scheduler-service/internal/domain"
)

// Suggestion is one address-autocomplete candidate.
type Suggestion struct {
	Label       string
	Coordinates domain.Coordinates
}

// Geocoder resolves a free-form address to coordinates.
// Implementations classify failures via *domain.GeocodingError kinds;
// resolution must be idempotent per address within a session.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// SuggestingGeocoder optionally extends Geocoder with autocomplete lookups.
type SuggestingGeocoder interface {
	Geocoder
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}
