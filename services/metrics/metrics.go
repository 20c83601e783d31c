// Package metrics exposes the prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baseldt/lms/core/guard"
)

// Auth operations
const (
	OpLogin    = "login"
	OpRegister = "register"
	OpLogout   = "logout"
)

// Collectors are registered once, on the default registry.
var (
	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lms_auth_attempts_total",
		Help: "Total number of session operations by operation and result",
	}, []string{"op", "result"})

	authDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lms_auth_duration_seconds",
		Help:    "Duration of session operations, simulated latency included",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 1.5, 2, 5},
	}, []string{"op"})

	guardDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lms_guard_decisions_total",
		Help: "Total number of route guard decisions by outcome",
	}, []string{"outcome"})

	browserContexts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lms_browser_contexts",
		Help: "Number of browser contexts held in memory",
	})
)

// Metrics records the service metrics. The zero value is ready to use.
type Metrics struct{}

func New() *Metrics { return &Metrics{} }

// ObserveAuth records the result of a session operation started at start.
func (m *Metrics) ObserveAuth(op string, ok bool, start time.Time) {
	result := "success"
	if !ok {
		result = "failure"
	}
	authAttempts.WithLabelValues(op, result).Inc()
	authDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// ObserveDecision records a guard decision.
func (m *Metrics) ObserveDecision(d guard.Decision) {
	guardDecisions.WithLabelValues(d.Outcome.String()).Inc()
}

// SetBrowserContexts records the number of live browser contexts.
func (m *Metrics) SetBrowserContexts(n int) {
	browserContexts.Set(float64(n))
}
