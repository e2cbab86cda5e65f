package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "meals_api"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	catalogOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "operations_total",
			Help:      "Total number of catalog operations by entity, operation and result.",
		},
		[]string{"entity", "operation", "result"},
	)

	catalogSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "entities",
			Help:      "Number of entities currently stored.",
		},
		[]string{"entity"},
	)

	nutritionLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nutrition",
			Name:      "lookups_total",
			Help:      "Total number of upstream nutrition lookups.",
		},
		[]string{"result"},
	)

	nutritionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "nutrition",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of upstream nutrition lookups.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
		},
		[]string{"result"},
	)

	nutritionCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nutrition",
			Name:      "cache_requests_total",
			Help:      "Nutrition cache lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		catalogOperations,
		catalogSize,
		nutritionLookups,
		nutritionDuration,
		nutritionCache,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks an HTTP request as in flight. The returned function
// must be called once the response status is known.
func RequestStarted(method, path string) func(status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(status int) {
		httpInFlight.Dec()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordOperation counts a catalog operation. result is "ok" or an error tag.
func RecordOperation(entity, operation, result string) {
	catalogOperations.WithLabelValues(entity, operation, result).Inc()
}

// SetCatalogSize records how many entities of a kind are stored.
func SetCatalogSize(entity string, size int) {
	catalogSize.WithLabelValues(entity).Set(float64(size))
}

// RecordNutritionLookup records an upstream lookup and its duration.
func RecordNutritionLookup(duration time.Duration, err error) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	nutritionLookups.WithLabelValues(result).Inc()
	nutritionDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordCacheHit counts a nutrition lookup served from the cache.
func RecordCacheHit() {
	nutritionCache.WithLabelValues("hit").Inc()
}

// RecordCacheMiss counts a nutrition lookup that went upstream.
func RecordCacheMiss() {
	nutritionCache.WithLabelValues("miss").Inc()
}
