package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-scheduler-service/internal/domain"
)

// SQLGeocodeCache is a Postgres-backed cache mapping addresses to
// coordinates. Address keys are expected to be normalized by the caller.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, errors.New("geocode cache: address must not be empty")
	}

	q := `
	SELECT lat, lon
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lon float64
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: empty address key")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, coords.Lat, coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache address=%q: %w", address, err)
	}
	return nil
}
