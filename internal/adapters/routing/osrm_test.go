package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/platform/httpx"
)

func zeroDelayClient() *httpx.Client {
	c := httpx.New()
	c.Sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return c
}

var osrmWaypoints = []domain.Coordinates{
	{Lat: 50.0755, Lon: 14.4378},
	{Lat: 49.1951, Lon: 16.6068},
}

func TestOSRMRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Coordinates go on the path as lon,lat pairs in travel order.
		want := "/route/v1/driving/14.4378,50.0755;16.6068,49.1951"
		if r.URL.Path != want {
			t.Fatalf("path = %q, want %q", r.URL.Path, want)
		}
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"coordinates": [[14.4378,50.0755],[15.5,49.7],[16.6068,49.1951]]},
				"legs": [{"duration": 7200, "distance": 205000}]
			}]
		}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(zeroDelayClient(), srv.URL)
	result, err := router.Route(context.Background(), osrmWaypoints)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(result.Legs))
	}
	if result.Legs[0].DurationSeconds != 7200 || result.Legs[0].DistanceMeters != 205000 {
		t.Fatalf("leg = %+v", result.Legs[0])
	}

	if len(result.Geometry) != 3 {
		t.Fatalf("got %d geometry points, want 3", len(result.Geometry))
	}
	// GeoJSON [lon, lat] must flip into Lat/Lon.
	if result.Geometry[0].Lat != 50.0755 || result.Geometry[0].Lon != 14.4378 {
		t.Fatalf("geometry[0] = %+v", result.Geometry[0])
	}
}

func TestOSRMRouteNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(zeroDelayClient(), srv.URL)
	_, err := router.Route(context.Background(), osrmWaypoints)

	var re *domain.RoutingError
	if !errors.As(err, &re) {
		t.Fatalf("expected *domain.RoutingError, got %v", err)
	}
	if re.Kind != domain.FailureNoRoute {
		t.Fatalf("kind = %v, want no_route", re.Kind)
	}
}

func TestOSRMRouteServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	router := NewOSRMRouter(zeroDelayClient(), srv.URL)
	_, err := router.Route(context.Background(), osrmWaypoints)

	var re *domain.RoutingError
	if !errors.As(err, &re) {
		t.Fatalf("expected *domain.RoutingError, got %v", err)
	}
	if !re.Kind.Transient() {
		t.Fatalf("kind = %v, want a transient kind", re.Kind)
	}
}

func TestOSRMRouteLegCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{"geometry": {"coordinates": []}, "legs": [{"duration": 1, "distance": 1}, {"duration": 1, "distance": 1}]}]
		}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(zeroDelayClient(), srv.URL)
	if _, err := router.Route(context.Background(), osrmWaypoints); err == nil {
		t.Fatal("expected error on leg/waypoint mismatch")
	}
}

func TestOSRMRouteTooFewWaypoints(t *testing.T) {
	router := NewOSRMRouter(zeroDelayClient(), "http://example.invalid")
	_, err := router.Route(context.Background(), osrmWaypoints[:1])

	var ce *domain.ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ContractError, got %v", err)
	}
}
