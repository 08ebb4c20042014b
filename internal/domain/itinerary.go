package domain

// Waypoint is any address the trip passes through (start, stop, or end).
// Coordinates are populated once by geocoding and then treated as
// immutable; a waypoint that already carries coordinates is never
// re-geocoded within a planning action.
type Waypoint struct {
	Address     string
	Coordinates *Coordinates
}

// HasCoordinates reports whether geocoding already resolved this waypoint.
func (w *Waypoint) HasCoordinates() bool { return w.Coordinates != nil }

// Stop is an intermediate waypoint with a break and an optional
// fixed arrival-time constraint. Fixed implies FixedTime is present and
// valid; when Fixed is false any FixedTime value is ignored.
type Stop struct {
	Waypoint
	BreakMinutes int
	Fixed        bool
	FixedTime    TimeOfDay
}

// RouteLeg is the travel segment between two consecutive waypoints.
type RouteLeg struct {
	DurationSeconds float64
	DistanceMeters  float64
}

// Itinerary is one planning action's input: start, ordered stops, end,
// and the chosen departure time. It is created fresh per plan request and
// never shared across sessions.
type Itinerary struct {
	Start         Waypoint
	Stops         []Stop
	End           Waypoint
	DepartureTime TimeOfDay
}

// Waypoints returns all waypoints in travel order:
// start, stops..., end. Legs align positionally with consecutive pairs.
func (it *Itinerary) Waypoints() []*Waypoint {
	out := make([]*Waypoint, 0, len(it.Stops)+2)
	out = append(out, &it.Start)
	for i := range it.Stops {
		out = append(out, &it.Stops[i].Waypoint)
	}
	out = append(out, &it.End)
	return out
}

// LegCount is the number of route legs a consistent routing response
// must contain: one per consecutive waypoint pair.
func (it *Itinerary) LegCount() int { return len(it.Stops) + 1 }
