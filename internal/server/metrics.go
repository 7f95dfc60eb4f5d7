package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry,
// so embedding the server in a larger process never double-registers.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	simulationsRun   prometheus.Counter
	monteCarloTrials prometheus.Counter
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rvb_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rvb_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		simulationsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rvb_simulations_total",
			Help: "Single-scenario simulations completed.",
		}),
		monteCarloTrials: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rvb_monte_carlo_trials_total",
			Help: "Monte Carlo trials completed across all requests.",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.simulationsRun,
		m.monteCarloTrials,
	)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(route string, code int, seconds float64) {
	m.requestsTotal.WithLabelValues(route, httpStatusLabel(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}

func httpStatusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
