package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a Postgres connection pool via the pgx stdlib driver.
// The driver is registered by the importing binary.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("verify postgres connection: %w", err)
	}

	return pool, nil
}
