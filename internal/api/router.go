package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"trip-scheduler-service/internal/api/handlers"
	"trip-scheduler-service/internal/events"
	"trip-scheduler-service/internal/metrics"
	"trip-scheduler-service/internal/ports"
)

// Deps carries everything the HTTP surface needs. Publisher and Metrics
// may be nil; Suggest is registered only when the geocoder supports it.
type Deps struct {
	Geocoder  ports.Geocoder
	Suggester ports.SuggestingGeocoder
	Router    ports.Router
	Metrics   *metrics.Collector
	Publisher *events.NATSPublisher
	Log       zerolog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Geocoder:  deps.Geocoder,
		Router:    deps.Router,
		Metrics:   deps.Metrics,
		Publisher: deps.Publisher,
		Validate:  validator.New(),
		Log:       deps.Log,
		Now:       time.Now,
	}

	mux.HandleFunc("/health", handlers.Health(deps.Log))
	mux.HandleFunc("/plan", planHandler.Plan)

	if deps.Suggester != nil {
		suggestHandler := &handlers.SuggestHandler{Geocoder: deps.Suggester, Log: deps.Log}
		mux.HandleFunc("/suggest", suggestHandler.Suggest)
	}

	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	return requestMiddleware(deps.Log, mux)
}
