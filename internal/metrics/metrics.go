package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polyprops_requests_total",
		Help: "Total API requests by endpoint and status code",
	}, []string{"endpoint", "code"})
	ComputeDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polyprops_compute_duration_ms",
		Help:    "Area/centroid computation time in milliseconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	}, []string{"endpoint"})
	ValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polyprops_validation_failures_total",
		Help: "Rejected vertex lists by failure kind",
	}, []string{"kind"})
	NonFiniteResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "polyprops_non_finite_results_total",
		Help: "Results with NaN or infinite values, e.g. zero-area input",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ComputeDurationMs)
	prometheus.MustRegister(ValidationFailuresTotal)
	prometheus.MustRegister(NonFiniteResultsTotal)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
