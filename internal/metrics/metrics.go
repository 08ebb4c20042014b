package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus instruments on a private
// registry so tests can create collectors without global-state collisions.
type Collector struct {
	reg *prometheus.Registry

	PlansTotal  *prometheus.CounterVec // outcome label: ok|validation|geocoding|routing|internal
	PlanSeconds prometheus.Histogram

	GeocodeCacheHits   prometheus.Counter
	GeocodeCacheMisses prometheus.Counter

	ExternalRetries prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		PlansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tripscheduler_plans_total",
			Help: "Planning requests by outcome.",
		}, []string{"outcome"}),
		PlanSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripscheduler_plan_duration_seconds",
			Help:    "End-to-end planning duration including external calls.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		GeocodeCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripscheduler_geocode_cache_hits_total",
			Help: "Geocode lookups served from cache.",
		}),
		GeocodeCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripscheduler_geocode_cache_misses_total",
			Help: "Geocode lookups that fell through to the live geocoder.",
		}),
		ExternalRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripscheduler_external_retries_total",
			Help: "Retried attempts against external geocoding/routing APIs.",
		}),
	}

	reg.MustRegister(
		c.PlansTotal,
		c.PlanSeconds,
		c.GeocodeCacheHits,
		c.GeocodeCacheMisses,
		c.ExternalRetries,
	)
	return c
}

// Handler serves the /metrics endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) PlanObserve(outcome string, d time.Duration) {
	c.PlansTotal.WithLabelValues(outcome).Inc()
	c.PlanSeconds.Observe(d.Seconds())
}

// GeocodeCacheHit implements the geocode adapter's metrics hook.
func (c *Collector) GeocodeCacheHit() { c.GeocodeCacheHits.Inc() }

// GeocodeCacheMiss implements the geocode adapter's metrics hook.
func (c *Collector) GeocodeCacheMiss() { c.GeocodeCacheMisses.Inc() }

// RetryInc implements the httpx client's OnRetry hook.
func (c *Collector) RetryInc() { c.ExternalRetries.Inc() }
