// Package metrics provides Prometheus metrics for the uiforge HTTP API:
// request throughput plus validation, autofix, and generation outcomes.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/uiforge/uiforge/internal/domain"
)

var (
	once     sync.Once
	instance *Metrics
)

// Metrics holds all Prometheus metric collectors for uiforge.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Validation
	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	ValidationScore    prometheus.Histogram
	IssuesTotal        *prometheus.CounterVec

	// Autofix
	FixesAppliedTotal *prometheus.CounterVec
	FixRejectedTotal  prometheus.Counter

	// Generation
	GenerationsTotal   *prometheus.CounterVec
	GenerationAttempts prometheus.Histogram
	GenerationDuration prometheus.Histogram
}

// Get returns the singleton Metrics instance.
func Get() *Metrics {
	once.Do(func() {
		instance = newMetrics()
	})
	return instance
}

func newMetrics() *Metrics {
	m := &Metrics{}

	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uiforge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method"},
	)

	m.HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "uiforge",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)

	m.ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "validation",
			Name:      "runs_total",
			Help:      "Total validation runs by outcome",
		},
		[]string{"outcome"},
	)

	m.ValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "uiforge",
			Subsystem: "validation",
			Name:      "duration_seconds",
			Help:      "Validation run duration in seconds",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		},
	)

	m.ValidationScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "uiforge",
			Subsystem: "validation",
			Name:      "score",
			Help:      "Distribution of validation scores",
			Buckets:   []float64{0, .2, .4, .6, .8, .9, .95, 1},
		},
	)

	m.IssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "validation",
			Name:      "issues_total",
			Help:      "Total issues found by axis and severity",
		},
		[]string{"axis", "severity"},
	)

	m.FixesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "autofix",
			Name:      "applied_total",
			Help:      "Total autofix applications by rule",
		},
		[]string{"rule"},
	)

	m.FixRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "autofix",
			Name:      "rejected_total",
			Help:      "Total autofix rewrites rejected by the regression verifier",
		},
	)

	m.GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uiforge",
			Subsystem: "generation",
			Name:      "runs_total",
			Help:      "Total generation runs by outcome",
		},
		[]string{"outcome"},
	)

	m.GenerationAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "uiforge",
			Subsystem: "generation",
			Name:      "attempts",
			Help:      "Model attempts needed per generation run",
			Buckets:   []float64{1, 2, 3, 4, 5},
		},
	)

	m.GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "uiforge",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "End-to-end generation duration in seconds",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(endpoint, method string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// RecordValidation records one validation run.
func (m *Metrics) RecordValidation(result *domain.ValidationResult, duration time.Duration) {
	outcome := "pass"
	if !result.Passed {
		outcome = "fail"
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
	m.ValidationDuration.Observe(duration.Seconds())
	m.ValidationScore.Observe(result.Score)
	for _, issue := range result.Issues {
		m.IssuesTotal.WithLabelValues(string(issue.Type), issue.Severity).Inc()
	}
}

// RecordFix records one autofix run.
func (m *Metrics) RecordFix(outcome *domain.FixOutcome) {
	for _, fix := range outcome.Applied {
		m.FixesAppliedTotal.WithLabelValues(fix.Rule).Add(float64(fix.Count))
	}
	if !outcome.Accepted {
		m.FixRejectedTotal.Inc()
	}
}

// RecordGeneration records one generation run.
func (m *Metrics) RecordGeneration(outcome *domain.GenerateOutcome, duration time.Duration) {
	label := "pass"
	if outcome.Result == nil || !outcome.Result.Passed {
		label = "fail"
	}
	m.GenerationsTotal.WithLabelValues(label).Inc()
	m.GenerationAttempts.Observe(float64(outcome.Attempts))
	m.GenerationDuration.Observe(duration.Seconds())
}
