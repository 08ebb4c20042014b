package cache

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the cache tables if they do not exist. Safe to run on
// every startup.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`
		CREATE TABLE IF NOT EXISTS geocode_cache (
			address TEXT PRIMARY KEY,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS leg_cache (
			from_lat DOUBLE PRECISION NOT NULL,
			from_lon DOUBLE PRECISION NOT NULL,
			to_lat DOUBLE PRECISION NOT NULL,
			to_lon DOUBLE PRECISION NOT NULL,
			profile TEXT NOT NULL,
			duration_seconds DOUBLE PRECISION NOT NULL,
			distance_meters DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (from_lat, from_lon, to_lat, to_lon, profile)
		);
		`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init cache schema: %w", err)
		}
	}
	return nil
}
