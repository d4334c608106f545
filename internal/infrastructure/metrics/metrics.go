// Package metrics exposes HTTP and estimate counters to Prometheus.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"estimate_app/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	ServiceName string
	Environment string
}

type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	estimatesSaved    *prometheus.CounterVec
	estimateStatus    *prometheus.CounterVec
	estimatesExported prometheus.Counter
}

var _ interfaces.IEstimateMetrics = (*Metrics)(nil)

// New registers every collector on registerer (the default registerer when
// nil). Registering twice on the same registerer panics.
func New(registerer prometheus.Registerer, cfg Config) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "estimate_app"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "estimate_app_http_requests_total",
				Help:        "HTTP requests by route, method and status code.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "estimate_app_http_request_duration_seconds",
				Help:        "HTTP request latency by route and method.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "route"},
		),
		estimatesSaved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "estimate_app_estimates_saved_total",
				Help:        "Estimates written by the form, by operation.",
				ConstLabels: constLabels,
			},
			[]string{"op"}, // create | update
		),
		estimateStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "estimate_app_estimate_status_changes_total",
				Help:        "Estimate status changes by target status.",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
		estimatesExported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "estimate_app_estimates_exported_rows_total",
				Help:        "Rows written to CSV exports.",
				ConstLabels: constLabels,
			},
		),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.estimatesSaved,
		m.estimateStatus,
		m.estimatesExported,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) EstimateSaved(op string) {
	if m == nil {
		return
	}
	m.estimatesSaved.WithLabelValues(op).Inc()
}

func (m *Metrics) EstimateStatusChanged(status string) {
	if m == nil {
		return
	}
	m.estimateStatus.WithLabelValues(status).Inc()
}

func (m *Metrics) EstimatesExported(rows int) {
	if m == nil || rows <= 0 {
		return
	}
	m.estimatesExported.Add(float64(rows))
}
