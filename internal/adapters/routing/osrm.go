package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/platform/httpx"
	"trip-scheduler-service/internal/ports"
)

const routeExtraAttempts = 2

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Duration float64 `json:"duration"`
			Distance float64 `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// OSRMRouter computes driving legs via the OSRM route service.
type OSRMRouter struct {
	client  *httpx.Client
	baseURL string
	profile string
}

func NewOSRMRouter(client *httpx.Client, baseURL string) *OSRMRouter {
	return &OSRMRouter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}
}

// Route requests one driving route through all waypoints in order.
// OSRM's legs are positional, one per consecutive coordinate pair, which is
// exactly the alignment the schedule calculator depends on.
func (r *OSRMRouter) Route(ctx context.Context, waypoints []domain.Coordinates) (ports.RouteResult, error) {
	if len(waypoints) < 2 {
		return ports.RouteResult{}, &domain.ContractError{
			Message: fmt.Sprintf("route needs at least 2 waypoints, got %d", len(waypoints)),
		}
	}

	parts := make([]string, 0, len(waypoints))
	for _, c := range waypoints {
		parts = append(parts, fmt.Sprintf("%g,%g", c.Lon, c.Lat))
	}
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s?overview=full&geometries=geojson&steps=false",
		r.baseURL, r.profile, strings.Join(parts, ";"),
	)

	resp, err := r.client.Do(ctx, routeExtraAttempts, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, &domain.RoutingError{Kind: classifyRoute(err), Err: err}
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, &domain.RoutingError{
			Kind: domain.FailureNetwork,
			Err:  fmt.Errorf("decode route response: %w", err),
		}
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, &domain.RoutingError{
			Kind: domain.FailureNoRoute,
			Err:  fmt.Errorf("osrm code %q", decoded.Code),
		}
	}

	route := decoded.Routes[0]
	if len(route.Legs) != len(waypoints)-1 {
		return ports.RouteResult{}, &domain.RoutingError{
			Kind: domain.FailureNoRoute,
			Err:  fmt.Errorf("got %d legs for %d waypoints", len(route.Legs), len(waypoints)),
		}
	}

	result := ports.RouteResult{
		Legs:     make([]domain.RouteLeg, 0, len(route.Legs)),
		Geometry: make([]domain.Coordinates, 0, len(route.Geometry.Coordinates)),
	}
	for _, leg := range route.Legs {
		result.Legs = append(result.Legs, domain.RouteLeg{
			DurationSeconds: leg.Duration,
			DistanceMeters:  leg.Distance,
		})
	}
	// GeoJSON is [lon, lat].
	for _, p := range route.Geometry.Coordinates {
		if len(p) != 2 {
			continue
		}
		result.Geometry = append(result.Geometry, domain.Coordinates{Lat: p[1], Lon: p[0]})
	}

	return result, nil
}

func classifyRoute(err error) domain.FailureKind {
	if errors.Is(err, httpx.ErrOffline) {
		return domain.FailureNetwork
	}
	var se *httpx.StatusError
	if errors.As(err, &se) {
		// OSRM reports unroutable input as a 400 with a JSON code.
		if se.Code == http.StatusBadRequest && strings.Contains(se.Body, "NoRoute") {
			return domain.FailureNoRoute
		}
		return domain.FailureNetwork
	}
	return httpx.Classify(err)
}
