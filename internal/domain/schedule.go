package domain

import "time"

// LocationKind identifies which physical location an event belongs to.
type LocationKind string

const (
	LocationStart LocationKind = "start"
	LocationStop  LocationKind = "stop"
	LocationEnd   LocationKind = "end"
)

// EventKind distinguishes arrivals from departures.
type EventKind string

const (
	EventDepart EventKind = "depart"
	EventArrive EventKind = "arrive"
)

// ScheduleEvent is a single timestamped occurrence at one waypoint.
// StopIndex is meaningful only when Location is LocationStop; downstream
// consumers correlate a stop's arrive/depart pair by that index, never by
// slice position. Generation order equals chronological order for any
// consistent itinerary.
type ScheduleEvent struct {
	Location LocationKind
	// 0-based index into Itinerary.Stops; -1 for start and end.
	StopIndex int
	Kind      EventKind
	Time      time.Time
	// Distance of the leg arriving at this event; nil on departures.
	LegDistanceMeters        *float64
	CumulativeDistanceMeters float64
	// Fixed marks a stop arrival pinned by a fixed-time constraint.
	Fixed bool
}

// ScheduleRow is one display row per physical location (start / stop / end),
// reduced from the raw events by the presenter.
type ScheduleRow struct {
	Location  LocationKind
	StopIndex int
	Label     string
	Arrival   *time.Time
	Departure *time.Time
	// Leg distance into this location, kilometers, one decimal; empty for start.
	LegKm string
	// Running total in kilometers, one decimal.
	CumulativeKm string
	Fixed        bool
}

// TripPlan is the result of one planning action: the presented schedule
// plus the data a map layer needs to draw it.
type TripPlan struct {
	Rows []ScheduleRow
	// Resolved waypoint coordinates in travel order (markers).
	Markers []Coordinates
	// Route shape from the router, when available.
	Geometry             []Coordinates
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
}
