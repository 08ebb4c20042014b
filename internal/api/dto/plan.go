package dto

// Structural request limits live here as validator tags; semantic checks
// (time parsing, fixed-time ordering) belong to the domain validator.
type PlanStopRequest struct {
	Address      string `json:"address" validate:"max=500"`
	BreakMinutes int    `json:"break_minutes"`
	Fixed        bool   `json:"fixed"`
	FixedTime    string `json:"fixed_time" validate:"max=5"`
}

type PlanRequest struct {
	Start     string            `json:"start" validate:"max=500"`
	End       string            `json:"end" validate:"max=500"`
	Departure string            `json:"departure" validate:"max=5"`
	Stops     []PlanStopRequest `json:"stops" validate:"max=25,dive"`
}

type ScheduleRowResponse struct {
	Label        string `json:"label"`
	Arrival      string `json:"arrival,omitempty"`
	Departure    string `json:"departure,omitempty"`
	LegKm        string `json:"leg_distance,omitempty"`
	CumulativeKm string `json:"cumulative_distance"`
	Fixed        bool   `json:"fixed,omitempty"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PlanResponse struct {
	Rows                 []ScheduleRowResponse `json:"schedule"`
	Markers              []CoordinatesResponse `json:"markers"`
	Geometry             []CoordinatesResponse `json:"geometry,omitempty"`
	TotalDistanceMeters  float64               `json:"total_distance_meters"`
	TotalDurationSeconds float64               `json:"total_duration_seconds"`
	GoogleMapsURL        string                `json:"google_maps_url"`
	ExportText           string                `json:"export_text"`
}

type SuggestionResponse struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type SuggestResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}
