package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "parenting_journal"

var (
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	statsComputeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "stats",
		Name:      "compute_duration_seconds",
		Help:      "Time spent loading entries and running the stats engine on a cache miss.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"kind"})

	statsRecordsProcessed = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "stats",
		Name:      "records_processed",
		Help:      "Number of journal entries fed to the stats engine per computation.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	statsCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stats",
		Name:      "cache_lookups_total",
		Help:      "Stats cache lookups by kind and result (hit or miss).",
	}, []string{"kind", "result"})
)

func init() {
	prometheus.MustRegister(httpRequestDuration, statsComputeDuration, statsRecordsProcessed, statsCacheLookups)
}

// ObserveHTTPRequest records one served request. Unmatched routes should be passed as "unmatched"
// to keep label cardinality bounded.
func ObserveHTTPRequest(route, method, status string, elapsed time.Duration) {
	httpRequestDuration.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}

// ObserveStatsComputation records a stats computation of the given kind ("journal" or "mood").
func ObserveStatsComputation(kind string, records int, elapsed time.Duration) {
	statsComputeDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	statsRecordsProcessed.Observe(float64(records))
}

// RecordStatsCacheLookup counts a cache hit or miss.
func RecordStatsCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	statsCacheLookups.WithLabelValues(kind, result).Inc()
}
