package main

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-scheduler-service/internal/adapters/cache"
	"trip-scheduler-service/internal/adapters/geocode"
	"trip-scheduler-service/internal/adapters/routing"
	"trip-scheduler-service/internal/api"
	"trip-scheduler-service/internal/config"
	"trip-scheduler-service/internal/events"
	"trip-scheduler-service/internal/metrics"
	"trip-scheduler-service/internal/platform/db"
	"trip-scheduler-service/internal/platform/httpx"
	"trip-scheduler-service/internal/platform/logger"
	"trip-scheduler-service/internal/ports"
)

// main is the application composition root. It wires concrete adapters
// (Nominatim, OSRM, Postgres/Redis caches, NATS) behind ports and starts
// the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFile)

	collector := metrics.NewCollector()

	client := httpx.New()
	client.OnRetry = collector.RetryInc

	var geocodeCache ports.GeocodeCache
	var legCache ports.LegCache

	switch cfg.CacheBackend {
	case "postgres":
		pool, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open cache database")
		}
		defer pool.Close()

		if err := cache.InitSchema(pool); err != nil {
			log.Fatal().Err(err).Msg("init cache schema")
		}
		geocodeCache = cache.NewSQLGeocodeCache(pool)
		legCache = cache.NewSQLLegCache(pool)
		log.Info().Msg("using postgres caches")

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		geocodeCache = cache.NewRedisGeocodeCache(rdb)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis geocode cache")
	}

	nominatim := geocode.NewNominatimGeocoder(client, cfg.NominatimBaseURL)
	geocoder := geocode.NewCachedGeocoder(nominatim, geocodeCache, collector)

	var tripRouter ports.Router
	if cfg.OSRMBaseURL != "" {
		tripRouter = routing.NewOSRMRouter(client, cfg.OSRMBaseURL)
		log.Info().Str("base_url", cfg.OSRMBaseURL).Msg("using OSRM router")
	} else {
		tripRouter = routing.NewHaversineRouter(cfg.FallbackSpeedKmh)
		log.Warn().Msg("OSRM_BASE_URL not set; using straight-line estimates")
	}
	if legCache != nil {
		tripRouter = routing.NewCachedRouter(tripRouter, legCache)
	}

	var publisher *events.NATSPublisher
	if cfg.NATSURL != "" {
		publisher, err = events.NewNATSPublisher(cfg.NATSURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("connect nats")
		}
		defer publisher.Close()
	}

	router := api.NewRouter(api.Deps{
		Geocoder:  geocoder,
		Suggester: nominatim,
		Router:    tripRouter,
		Metrics:   collector,
		Publisher: publisher,
		Log:       log,
	})

	// Timeouts are tuned for cold-cache planning (external API latency).
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("server listening")
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
