package metrics

import "github.com/prometheus/client_golang/prometheus"

// GatewayMetrics exposes counters/histograms for calls against the remote
// hospital-management API.
type GatewayMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authFailures    *prometheus.CounterVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hms",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total requests issued to the hospital API",
		}, []string{"resource", "operation", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hms",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency of hospital API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "operation"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hms",
			Subsystem: "gateway",
			Name:      "auth_failures_total",
			Help:      "Requests rejected by the hospital API with 401/403",
		}, []string{"resource"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.authFailures)
	return m
}

func (m *GatewayMetrics) ObserveRequest(resource, operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(resource, operation, outcome).Inc()
	m.requestDuration.WithLabelValues(resource, operation).Observe(seconds)
}

func (m *GatewayMetrics) ObserveAuthFailure(resource string) {
	if m == nil {
		return
	}
	m.authFailures.WithLabelValues(resource).Inc()
}
