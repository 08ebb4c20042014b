package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// Optional Postgres DSN for the geocode/leg caches; empty disables them.
	DatabaseURL string
	// Optional Redis address; used when CacheBackend is "redis".
	RedisAddr    string
	CacheBackend string // "postgres" | "redis" | "none"

	NominatimBaseURL string
	// Optional OSRM base URL; empty selects the offline haversine router.
	OSRMBaseURL string
	// Average speed for the offline router's estimates.
	FallbackSpeedKmh float64

	// Optional NATS URL for planned-trip events.
	NATSURL string

	LogLevel string
	LogFile  string
}

// Load reads configuration from .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:         getenvDefault("HTTP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		CacheBackend:     getenvDefault("CACHE_BACKEND", "none"),
		NominatimBaseURL: getenvDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OSRMBaseURL:      os.Getenv("OSRM_BASE_URL"),
		NATSURL:          os.Getenv("NATS_URL"),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
	}

	speed := getenvDefault("FALLBACK_SPEED_KMH", "70")
	parsed, err := strconv.ParseFloat(speed, 64)
	if err != nil || parsed <= 0 {
		return nil, fmt.Errorf("FALLBACK_SPEED_KMH %q must be a positive number", speed)
	}
	cfg.FallbackSpeedKmh = parsed

	switch cfg.CacheBackend {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("CACHE_BACKEND=postgres requires DATABASE_URL")
		}
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("CACHE_BACKEND=redis requires REDIS_ADDR")
		}
	case "none":
	default:
		return nil, fmt.Errorf("CACHE_BACKEND %q must be postgres, redis or none", cfg.CacheBackend)
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
