package services

import (
	"fmt"
	"strings"

	"trip-scheduler-service/internal/domain"
)

// StopInput is one requested intermediate stop, pre-validation.
type StopInput struct {
	Address      string
	BreakMinutes int
	Fixed        bool
	FixedTime    string
}

// PlanRequest is the raw input of one planning action.
type PlanRequest struct {
	StartAddress  string
	EndAddress    string
	DepartureTime string
	Stops         []StopInput
}

// ValidatePlanRequest checks a plan request before any geocoding or routing
// is attempted, short-circuiting on the first defect. On success it returns
// the parsed itinerary; on failure a *domain.ValidationError.
//
// Fixed arrival times are checked for feasibility here because a provably
// infeasible ordering (a later fixed stop earlier than a previous one)
// would make the routing call pointless. Equal times are feasible:
// zero-duration legs are permitted.
func ValidatePlanRequest(req PlanRequest) (*domain.Itinerary, error) {
	start := strings.TrimSpace(req.StartAddress)
	if start == "" {
		return nil, &domain.ValidationError{Message: "start address is required"}
	}

	end := strings.TrimSpace(req.EndAddress)
	if end == "" {
		return nil, &domain.ValidationError{Message: "end address is required"}
	}

	if strings.TrimSpace(req.DepartureTime) == "" {
		return nil, &domain.ValidationError{Message: "departure time is required"}
	}
	departure, err := domain.ParseTimeOfDay(req.DepartureTime)
	if err != nil {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("departure time %q is not a valid HH:MM time", req.DepartureTime),
		}
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for i, in := range req.Stops {
		addr := strings.TrimSpace(in.Address)
		if addr == "" {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("stop %d: address is required", i+1),
			}
		}

		if in.BreakMinutes < 0 {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("stop %d: break minutes must not be negative", i+1),
			}
		}

		stop := domain.Stop{
			Waypoint:     domain.Waypoint{Address: addr},
			BreakMinutes: in.BreakMinutes,
			Fixed:        in.Fixed,
		}

		if in.Fixed {
			ft, err := domain.ParseTimeOfDay(in.FixedTime)
			if err != nil {
				return nil, &domain.ValidationError{
					Message: fmt.Sprintf("stop %d: fixed arrival time %q is not a valid HH:MM time", i+1, in.FixedTime),
				}
			}
			if ft.Before(departure) {
				return nil, &domain.ValidationError{
					Message: fmt.Sprintf("stop %d: fixed arrival time %s is before departure at %s", i+1, ft, departure),
				}
			}
			stop.FixedTime = ft
		}

		stops = append(stops, stop)
	}

	// Walk the fixed stops in order; each must not precede the previous
	// checkpoint. Unfixed stops do not advance the checkpoint since their
	// arrival time is unknown before routing.
	lastTime := departure
	for i := range stops {
		if !stops[i].Fixed {
			continue
		}
		if stops[i].FixedTime.Before(lastTime) {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf(
					"stop %d: fixed arrival time %s is earlier than a previous fixed arrival at %s",
					i+1, stops[i].FixedTime, lastTime,
				),
			}
		}
		lastTime = stops[i].FixedTime
	}

	return &domain.Itinerary{
		Start:         domain.Waypoint{Address: start},
		Stops:         stops,
		End:           domain.Waypoint{Address: end},
		DepartureTime: departure,
	}, nil
}
