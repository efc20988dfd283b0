package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yale_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yale_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yale_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Conversion metrics.
var (
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yale_conversions_total",
		Help: "Conversions by mode (text, interlinear) and labial rule setting",
	}, []string{"mode", "labial"})

	ConversionInputRunes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "yale_conversion_input_runes",
		Help:    "Length of conversion input in runes",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	HistoryWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yale_history_writes_total",
		Help: "History writes by operation and result",
	}, []string{"op", "result"})
)

// Database pool metrics (gauges updated periodically).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yale_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yale_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yale_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yale_db_pool_max_conns",
		Help: "Max connections configured for the pool",
	})
)
