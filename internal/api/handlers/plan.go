package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"trip-scheduler-service/internal/api/dto"
	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/events"
	"trip-scheduler-service/internal/metrics"
	"trip-scheduler-service/internal/platform/obs"
	"trip-scheduler-service/internal/ports"
	"trip-scheduler-service/internal/services"
)

// PlanHandler runs one planning action per request: validate, geocode,
// route, schedule, present. The itinerary lives only for the request.
type PlanHandler struct {
	Geocoder  ports.Geocoder
	Router    ports.Router
	Metrics   *metrics.Collector
	Publisher *events.NATSPublisher
	Validate  *validator.Validate
	Log       zerolog.Logger
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (h *PlanHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, h.Log, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			writeError(w, r, h.Log, http.StatusBadRequest, "request exceeds allowed limits")
			return
		}
	}

	stops := make([]services.StopInput, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, services.StopInput{
			Address:      s.Address,
			BreakMinutes: s.BreakMinutes,
			Fixed:        s.Fixed,
			FixedTime:    s.FixedTime,
		})
	}

	start := time.Now()
	done := obs.Time(r.Context(), h.Log, "plan")
	plan, err := services.PlanTrip(r.Context(), services.PlanRequest{
		StartAddress:  req.Start,
		EndAddress:    req.End,
		DepartureTime: req.Departure,
		Stops:         stops,
	}, h.Geocoder, h.Router, h.now())
	done(&err)

	if err != nil {
		h.writePlanError(w, r, err, time.Since(start))
		return
	}

	if h.Metrics != nil {
		h.Metrics.PlanObserve("ok", time.Since(start))
	}
	if h.Publisher != nil {
		h.Publisher.PlanPublished(plan, len(stops))
	}

	writeJSON(w, r, h.Log, http.StatusOK, toPlanResponse(plan))
}

// writePlanError maps the error taxonomy onto HTTP statuses. User-facing
// text is composed here; the core services only produce structured errors.
func (h *PlanHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error, elapsed time.Duration) {
	outcome := "internal"
	status := http.StatusInternalServerError
	msg := "internal server error"

	var ve *domain.ValidationError
	var ge *domain.GeocodingError
	var re *domain.RoutingError
	var ce *domain.ContractError

	switch {
	case errors.As(err, &ve):
		outcome, status, msg = "validation", http.StatusUnprocessableEntity, ve.Message

	case errors.As(err, &ge):
		outcome = "geocoding"
		if ge.Kind == domain.FailureNotFound {
			status = http.StatusUnprocessableEntity
			msg = "could not find the " + ge.Waypoint + " address; please check it"
		} else {
			status = http.StatusBadGateway
			msg = "geocoding the " + ge.Waypoint + " address failed; please try again"
		}

	case errors.As(err, &re):
		outcome = "routing"
		if re.Kind == domain.FailureNoRoute {
			status = http.StatusUnprocessableEntity
			msg = "no driving route exists between the given addresses"
		} else {
			status = http.StatusBadGateway
			msg = "route computation failed; please try again"
		}

	case errors.As(err, &ce):
		// Upstream bug; log loudly, never expose details.
		h.Log.Error().Err(err).Msg("planning contract violation")
	}

	if outcome == "internal" {
		h.Log.Error().Err(err).Msg("plan trip failed")
	} else {
		h.Log.Warn().Err(err).Str("outcome", outcome).Msg("plan trip rejected")
	}

	if h.Metrics != nil {
		h.Metrics.PlanObserve(outcome, elapsed)
	}
	writeError(w, r, h.Log, status, msg)
}

func toPlanResponse(plan *domain.TripPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		Rows:                 make([]dto.ScheduleRowResponse, 0, len(plan.Rows)),
		Markers:              toCoordsResponse(plan.Markers),
		Geometry:             toCoordsResponse(plan.Geometry),
		TotalDistanceMeters:  plan.TotalDistanceMeters,
		TotalDurationSeconds: plan.TotalDurationSeconds,
		GoogleMapsURL:        services.GoogleMapsURL(plan.Markers),
		ExportText:           services.RenderText(plan.Rows),
	}

	for _, row := range plan.Rows {
		out := dto.ScheduleRowResponse{
			Label:        row.Label,
			LegKm:        row.LegKm,
			CumulativeKm: row.CumulativeKm,
			Fixed:        row.Fixed,
		}
		// Display granularity is the minute; formatting truncates seconds.
		if row.Arrival != nil {
			out.Arrival = row.Arrival.Format("15:04")
		}
		if row.Departure != nil {
			out.Departure = row.Departure.Format("15:04")
		}
		res.Rows = append(res.Rows, out)
	}

	return res
}

func toCoordsResponse(coords []domain.Coordinates) []dto.CoordinatesResponse {
	out := make([]dto.CoordinatesResponse, 0, len(coords))
	for _, c := range coords {
		out = append(out, dto.CoordinatesResponse{Lat: c.Lat, Lon: c.Lon})
	}
	return out
}
