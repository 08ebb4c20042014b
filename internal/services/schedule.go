package services

import (
	"fmt"
	"time"

	"trip-scheduler-service/internal/domain"
)

// BuildSchedule turns an itinerary and its routed legs into the ordered
// event timeline. `day` anchors all wall-clock times on one calendar day.
//
// Legs must align with consecutive waypoint pairs (start→stop1, ...,
// lastStop→end); a count mismatch is a *domain.ContractError, never
// silently truncated or padded.
//
// A fixed stop's arrival is set to its fixed time exactly, overriding the
// travel-time-accumulated value. Feasibility of that ordering was already
// established by the validator; the override is authoritative here, not a
// floor or ceiling check.
func BuildSchedule(it *domain.Itinerary, legs []domain.RouteLeg, day time.Time) ([]domain.ScheduleEvent, error) {
	if len(legs) != it.LegCount() {
		return nil, &domain.ContractError{
			Message: fmt.Sprintf("got %d legs for %d stops, want %d", len(legs), len(it.Stops), it.LegCount()),
		}
	}

	currentTime := it.DepartureTime.At(day)
	cumulative := 0.0

	events := make([]domain.ScheduleEvent, 0, 2*len(it.Stops)+2)
	events = append(events, domain.ScheduleEvent{
		Location:                 domain.LocationStart,
		StopIndex:                -1,
		Kind:                     domain.EventDepart,
		Time:                     currentTime,
		CumulativeDistanceMeters: 0,
	})

	for i, leg := range legs {
		cumulative += leg.DistanceMeters
		legDistance := leg.DistanceMeters

		if i < len(it.Stops) {
			stop := &it.Stops[i]

			if stop.Fixed {
				currentTime = stop.FixedTime.At(day)
			} else {
				currentTime = currentTime.Add(time.Duration(leg.DurationSeconds * float64(time.Second)))
			}

			events = append(events, domain.ScheduleEvent{
				Location:                 domain.LocationStop,
				StopIndex:                i,
				Kind:                     domain.EventArrive,
				Time:                     currentTime,
				LegDistanceMeters:        &legDistance,
				CumulativeDistanceMeters: cumulative,
				Fixed:                    stop.Fixed,
			})

			currentTime = currentTime.Add(time.Duration(stop.BreakMinutes) * time.Minute)
			events = append(events, domain.ScheduleEvent{
				Location:                 domain.LocationStop,
				StopIndex:                i,
				Kind:                     domain.EventDepart,
				Time:                     currentTime,
				CumulativeDistanceMeters: cumulative,
				Fixed:                    stop.Fixed,
			})
			continue
		}

		// Final leg into the end waypoint.
		currentTime = currentTime.Add(time.Duration(leg.DurationSeconds * float64(time.Second)))
		events = append(events, domain.ScheduleEvent{
			Location:                 domain.LocationEnd,
			StopIndex:                -1,
			Kind:                     domain.EventArrive,
			Time:                     currentTime,
			LegDistanceMeters:        &legDistance,
			CumulativeDistanceMeters: cumulative,
		})
	}

	return events, nil
}
