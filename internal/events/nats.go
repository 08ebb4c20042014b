package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"trip-scheduler-service/internal/domain"
)

const plannedSubject = "trips.planned"

// PlannedTripMessage is the event body published after a successful plan.
type PlannedTripMessage struct {
	PlannedAt            time.Time `json:"plannedAt"`
	StopCount            int       `json:"stopCount"`
	TotalDistanceMeters  float64   `json:"totalDistanceMeters"`
	TotalDurationSeconds float64   `json:"totalDurationSeconds"`
}

// NATSPublisher emits planned-trip events. Publishing is best-effort:
// failures are logged, never propagated into the plan response.
type NATSPublisher struct {
	nc  *nats.Conn
	log zerolog.Logger
}

func NewNATSPublisher(url string, log zerolog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("trip-scheduler-service"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			log.Warn().Msg("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATSPublisher{nc: nc, log: log}, nil
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		p.nc.Close()
	}
}

// PlanPublished publishes a summary of a completed plan.
func (p *NATSPublisher) PlanPublished(plan *domain.TripPlan, stopCount int) {
	if p == nil || p.nc == nil {
		return
	}

	msg := PlannedTripMessage{
		PlannedAt:            time.Now().UTC(),
		StopCount:            stopCount,
		TotalDistanceMeters:  plan.TotalDistanceMeters,
		TotalDurationSeconds: plan.TotalDurationSeconds,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		p.log.Error().Err(err).Msg("encode planned trip event")
		return
	}
	if err := p.nc.Publish(plannedSubject, payload); err != nil {
		p.log.Error().Err(err).Msg("publish planned trip event")
	}
}
