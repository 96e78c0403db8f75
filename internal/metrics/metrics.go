// Package metrics exposes Prometheus counters for generated and scored passwords.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passgen"

// Metrics holds the collectors and the registry they are registered on.
type Metrics struct {
	registry *prometheus.Registry

	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
	checked   *prometheus.CounterVec
}

// New creates a Metrics with its own registry, including Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Passwords generated, by strength label.",
		}, []string{"label"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Rejected generation requests, by reason.",
		}, []string{"reason"}),
		checked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strength_checks_total",
			Help:      "Passwords scored through the strength endpoint, by label.",
		}, []string{"label"}),
	}

	m.registry.MustRegister(
		m.generated,
		m.failures,
		m.checked,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Generated counts a generated password.
func (m *Metrics) Generated(label string) {
	m.generated.WithLabelValues(label).Inc()
}

// GenerationFailed counts a rejected generation request.
func (m *Metrics) GenerationFailed(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

// Checked counts a scored password.
func (m *Metrics) Checked(label string) {
	m.checked.WithLabelValues(label).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
