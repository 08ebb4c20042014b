package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/platform/httpx"
	"trip-scheduler-service/internal/ports"
)

const (
	// Route planning gets a deeper retry budget than interactive
	// autocomplete, which has to stay responsive.
	geocodeExtraAttempts = 2
	suggestExtraAttempts = 1
)

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder resolves addresses via the Nominatim search API.
type NominatimGeocoder struct {
	client    *httpx.Client
	baseURL   string
	userAgent string
	// Optional ISO country filter for suggestions (e.g. "cz").
	CountryCodes string
}

func NewNominatimGeocoder(client *httpx.Client, baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "trip-scheduler-service",
	}
}

func (g *NominatimGeocoder) searchRequest(ctx context.Context, query string, limit int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	q := req.URL.Query()
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("q", query)
	if g.CountryCodes != "" {
		q.Set("countrycodes", g.CountryCodes)
	}
	req.URL.RawQuery = q.Encode()
	return req, nil
}

func (g *NominatimGeocoder) search(ctx context.Context, query string, limit, extraAttempts int) ([]nominatimResult, error) {
	resp, err := g.client.Do(ctx, extraAttempts, func() (*http.Request, error) {
		return g.searchRequest(ctx, query, limit)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return results, nil
}

// Geocode resolves one address to coordinates. An empty result set is a
// NotFound failure; transport failures carry their transient kind so the
// caller can tell the user to retry rather than edit input.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	results, err := g.search(ctx, address, 1, geocodeExtraAttempts)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{
			Address: address,
			Kind:    classifyGeocode(err),
			Err:     err,
		}
	}

	if len(results) == 0 {
		return domain.Coordinates{}, &domain.GeocodingError{
			Address: address,
			Kind:    domain.FailureNotFound,
		}
	}

	coords, err := parseCoords(results[0])
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodingError{
			Address: address,
			Kind:    domain.FailureNotFound,
			Err:     err,
		}
	}
	return coords, nil
}

// Suggest returns up to 10 autocomplete candidates for a partial query.
func (g *NominatimGeocoder) Suggest(ctx context.Context, query string) ([]ports.Suggestion, error) {
	results, err := g.search(ctx, query, 10, suggestExtraAttempts)
	if err != nil {
		return nil, &domain.GeocodingError{
			Address: query,
			Kind:    classifyGeocode(err),
			Err:     err,
		}
	}

	out := make([]ports.Suggestion, 0, len(results))
	for _, r := range results {
		coords, err := parseCoords(r)
		if err != nil {
			continue
		}
		out = append(out, ports.Suggestion{Label: r.DisplayName, Coordinates: coords})
	}
	return out, nil
}

func parseCoords(r nominatimResult) (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid latitude %q", r.Lat)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid longitude %q", r.Lon)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func classifyGeocode(err error) domain.FailureKind {
	if errors.Is(err, httpx.ErrOffline) {
		return domain.FailureNetwork
	}
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return domain.FailureNetwork
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return domain.FailureTimeout
	}
	return httpx.Classify(err)
}
