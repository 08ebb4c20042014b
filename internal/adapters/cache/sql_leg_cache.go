package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-scheduler-service/internal/domain"
)

// SQLLegCache is a Postgres-backed cache of routed legs keyed by an exact
// origin/destination coordinate pair and routing profile.
type SQLLegCache struct {
	DB *sql.DB
}

func NewSQLLegCache(db *sql.DB) *SQLLegCache {
	return &SQLLegCache{DB: db}
}

func (s *SQLLegCache) Get(ctx context.Context, from, to domain.Coordinates, profile string) (domain.RouteLeg, bool, error) {
	if s.DB == nil {
		return domain.RouteLeg{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT duration_seconds, distance_meters
	FROM leg_cache
	WHERE from_lat = $1 AND from_lon = $2
		AND to_lat = $3 AND to_lon = $4
		AND profile = $5;
	`

	var leg domain.RouteLeg
	err := s.DB.QueryRowContext(ctx, q, from.Lat, from.Lon, to.Lat, to.Lon, profile).
		Scan(&leg.DurationSeconds, &leg.DistanceMeters)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RouteLeg{}, false, nil
	}
	if err != nil {
		return domain.RouteLeg{}, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	return leg, true, nil
}

func (s *SQLLegCache) Put(ctx context.Context, from, to domain.Coordinates, profile string, leg domain.RouteLeg) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT INTO leg_cache (from_lat, from_lon, to_lat, to_lon, profile, duration_seconds, distance_meters)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (from_lat, from_lon, to_lat, to_lon, profile) DO UPDATE
	SET duration_seconds = EXCLUDED.duration_seconds,
		distance_meters = EXCLUDED.distance_meters;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		from.Lat, from.Lon, to.Lat, to.Lon, profile,
		leg.DurationSeconds, leg.DistanceMeters,
	); err != nil {
		return fmt.Errorf("insert leg cache: %w", err)
	}
	return nil
}
