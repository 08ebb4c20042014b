package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"trip-scheduler-service/internal/domain"
)

var testDay = time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2026, 5, 20, h, m, 0, 0, time.UTC)
}

func oneStopItinerary() *domain.Itinerary {
	return &domain.Itinerary{
		Start:         domain.Waypoint{Address: "Prague"},
		Stops:         []domain.Stop{{Waypoint: domain.Waypoint{Address: "Jihlava"}, BreakMinutes: 30}},
		End:           domain.Waypoint{Address: "Brno"},
		DepartureTime: domain.TimeOfDay{Hour: 8},
	}
}

func oneStopLegs() []domain.RouteLeg {
	return []domain.RouteLeg{
		{DurationSeconds: 3600, DistanceMeters: 50000},
		{DurationSeconds: 1800, DistanceMeters: 20000},
	}
}

func TestBuildScheduleOneStop(t *testing.T) {
	events, err := BuildSchedule(oneStopItinerary(), oneStopLegs(), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	if events[0].Kind != domain.EventDepart || !events[0].Time.Equal(at(8, 0)) {
		t.Fatalf("start depart = %+v", events[0])
	}
	if events[0].CumulativeDistanceMeters != 0 {
		t.Fatalf("start cumulative = %v, want 0", events[0].CumulativeDistanceMeters)
	}

	if events[1].Kind != domain.EventArrive || !events[1].Time.Equal(at(9, 0)) {
		t.Fatalf("stop arrive = %+v", events[1])
	}
	if *events[1].LegDistanceMeters != 50000 || events[1].CumulativeDistanceMeters != 50000 {
		t.Fatalf("stop arrive distances = %+v", events[1])
	}

	if events[2].Kind != domain.EventDepart || !events[2].Time.Equal(at(9, 30)) {
		t.Fatalf("stop depart = %+v", events[2])
	}
	if events[2].LegDistanceMeters != nil {
		t.Fatal("departure rows carry no leg distance")
	}
	if events[2].CumulativeDistanceMeters != 50000 {
		t.Fatalf("stop depart cumulative = %v, want 50000", events[2].CumulativeDistanceMeters)
	}

	if events[3].Location != domain.LocationEnd || !events[3].Time.Equal(at(10, 0)) {
		t.Fatalf("end arrive = %+v", events[3])
	}
	if events[3].CumulativeDistanceMeters != 70000 {
		t.Fatalf("end cumulative = %v, want 70000", events[3].CumulativeDistanceMeters)
	}
}

func TestBuildScheduleFixedTimeOverride(t *testing.T) {
	it := oneStopItinerary()
	it.Stops[0].Fixed = true
	it.Stops[0].FixedTime = domain.TimeOfDay{Hour: 9, Minute: 15}

	events, err := BuildSchedule(it, oneStopLegs(), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Arrival pinned to 09:15 regardless of the 3600s leg; downstream
	// times shift with it, distances are unaffected.
	if !events[1].Time.Equal(at(9, 15)) {
		t.Fatalf("fixed arrive = %v, want 09:15", events[1].Time)
	}
	if !events[1].Fixed {
		t.Fatal("fixed arrival should carry the fixed flag")
	}
	if !events[2].Time.Equal(at(9, 45)) {
		t.Fatalf("depart after break = %v, want 09:45", events[2].Time)
	}
	if !events[3].Time.Equal(at(10, 15)) {
		t.Fatalf("end arrive = %v, want 10:15", events[3].Time)
	}
	if events[3].CumulativeDistanceMeters != 70000 {
		t.Fatalf("cumulative = %v, want 70000", events[3].CumulativeDistanceMeters)
	}
}

func TestBuildScheduleZeroStops(t *testing.T) {
	it := &domain.Itinerary{
		Start:         domain.Waypoint{Address: "Prague"},
		End:           domain.Waypoint{Address: "Brno"},
		DepartureTime: domain.TimeOfDay{Hour: 6, Minute: 30},
	}
	legs := []domain.RouteLeg{{DurationSeconds: 5400, DistanceMeters: 120000}}

	events, err := BuildSchedule(it, legs, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[1].Location != domain.LocationEnd || !events[1].Time.Equal(at(8, 0)) {
		t.Fatalf("end arrive = %+v", events[1])
	}
	if events[1].CumulativeDistanceMeters != 120000 {
		t.Fatalf("cumulative = %v, want the single leg's distance", events[1].CumulativeDistanceMeters)
	}
}

func TestBuildScheduleEventCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		it := &domain.Itinerary{
			Start:         domain.Waypoint{Address: "S"},
			End:           domain.Waypoint{Address: "E"},
			DepartureTime: domain.TimeOfDay{Hour: 8},
		}
		legs := make([]domain.RouteLeg, 0, n+1)
		for i := 0; i <= n; i++ {
			legs = append(legs, domain.RouteLeg{DurationSeconds: 600, DistanceMeters: 1000})
			if i < n {
				it.Stops = append(it.Stops, domain.Stop{Waypoint: domain.Waypoint{Address: "X"}, BreakMinutes: 5})
			}
		}

		events, err := BuildSchedule(it, legs, testDay)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(events) != 2*n+2 {
			t.Fatalf("n=%d: got %d events, want %d", n, len(events), 2*n+2)
		}
	}
}

func TestBuildScheduleMonotonic(t *testing.T) {
	it := oneStopItinerary()
	it.Stops = append(it.Stops, domain.Stop{
		Waypoint:  domain.Waypoint{Address: "Humpolec"},
		Fixed:     true,
		FixedTime: domain.TimeOfDay{Hour: 11},
	})
	legs := append(oneStopLegs(), domain.RouteLeg{DurationSeconds: 900, DistanceMeters: 15000})

	events, err := BuildSchedule(it, legs, testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Time.Before(events[i-1].Time) {
			t.Fatalf("event %d at %v precedes event %d at %v", i, events[i].Time, i-1, events[i-1].Time)
		}
	}
}

func TestBuildScheduleDeterministic(t *testing.T) {
	a, err := BuildSchedule(oneStopItinerary(), oneStopLegs(), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildSchedule(oneStopItinerary(), oneStopLegs(), testDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical events")
	}
}

func TestBuildScheduleLegCountMismatch(t *testing.T) {
	it := oneStopItinerary()

	_, err := BuildSchedule(it, oneStopLegs()[:1], testDay)
	var ce *domain.ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ContractError, got %v", err)
	}

	_, err = BuildSchedule(it, append(oneStopLegs(), domain.RouteLeg{}), testDay)
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ContractError on excess legs, got %v", err)
	}
}
