package roundmetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RoundMetrics records what the round endpoints do.
type RoundMetrics interface {
	RecordRoundRequest(round int, status string)
	RecordWorkbookOpen(source string, d time.Duration)
	RecordUnmatchedNames(round int, n int)
}

// PrometheusMetrics implements RoundMetrics on a Prometheus registry.
type PrometheusMetrics struct {
	requests     *prometheus.CounterVec
	workbookOpen *prometheus.HistogramVec
	unmatched    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the round collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "round_requests_total",
			Help:      "Round report requests by round and outcome.",
		}, []string{"round", "status"}),
		workbookOpen: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workbook_open_seconds",
			Help:      "Time spent opening the tour workbook.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		unmatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_names_total",
			Help:      "Matchplay names with no row in the hole-score block.",
		}, []string{"round"}),
	}
}

func (m *PrometheusMetrics) RecordRoundRequest(round int, status string) {
	m.requests.WithLabelValues(strconv.Itoa(round), status).Inc()
}

func (m *PrometheusMetrics) RecordWorkbookOpen(source string, d time.Duration) {
	m.workbookOpen.WithLabelValues(source).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordUnmatchedNames(round int, n int) {
	if n <= 0 {
		return
	}
	m.unmatched.WithLabelValues(strconv.Itoa(round)).Add(float64(n))
}

// NoOpMetrics discards everything. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordRoundRequest(int, string)           {}
func (NoOpMetrics) RecordWorkbookOpen(string, time.Duration) {}
func (NoOpMetrics) RecordUnmatchedNames(int, int)            {}
