package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// PlanTrip runs one full planning action: validate input, geocode every
// waypoint, route the ordered coordinate sequence, build the schedule and
// present it. `day` anchors the schedule's wall-clock times.
//
// Waypoints are geocoded sequentially in travel order; a waypoint that
// already carries coordinates is skipped. Geocoding failures are annotated
// with the waypoint that failed before surfacing.
func PlanTrip(
	ctx context.Context,
	req PlanRequest,
	geocoder ports.Geocoder,
	router ports.Router,
	day time.Time,
) (*domain.TripPlan, error) {
	it, err := ValidatePlanRequest(req)
	if err != nil {
		return nil, err
	}

	waypoints := it.Waypoints()
	for i, wp := range waypoints {
		if wp.HasCoordinates() {
			continue
		}

		coords, err := geocoder.Geocode(ctx, wp.Address)
		if err != nil {
			return nil, annotateGeocodeError(err, waypointLabel(i, len(waypoints)), wp.Address)
		}
		wp.Coordinates = &coords
	}

	// Leg i in the response is positionally tied to waypoint i+1; the
	// coordinate order handed to the router must be travel order.
	coords := make([]domain.Coordinates, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = *wp.Coordinates
	}

	route, err := router.Route(ctx, coords)
	if err != nil {
		var re *domain.RoutingError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, &domain.RoutingError{Kind: domain.FailureNetwork, Err: err}
	}

	events, err := BuildSchedule(it, route.Legs, day)
	if err != nil {
		return nil, err
	}

	plan := &domain.TripPlan{
		Rows:     PresentSchedule(it, events),
		Markers:  coords,
		Geometry: route.Geometry,
	}
	for _, leg := range route.Legs {
		plan.TotalDistanceMeters += leg.DistanceMeters
		plan.TotalDurationSeconds += leg.DurationSeconds
	}

	return plan, nil
}

func waypointLabel(i, total int) string {
	switch {
	case i == 0:
		return "start"
	case i == total-1:
		return "end"
	default:
		return fmt.Sprintf("stop %d", i)
	}
}

func annotateGeocodeError(err error, label, address string) error {
	var ge *domain.GeocodingError
	if errors.As(err, &ge) {
		ge.Waypoint = label
		ge.Address = address
		return ge
	}
	return &domain.GeocodingError{Waypoint: label, Address: address, Kind: domain.FailureNetwork, Err: err}
}
