package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CustomersRegistered   prometheus.Counter
	ApplicationsSubmitted prometheus.Counter
	Decisions             *prometheus.CounterVec
	NotificationsWritten  prometheus.Counter
}

// New creates and registers all Prometheus metrics on the given registerer.
// Pass a fresh registry in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CustomersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "aurum_customers_registered_total",
			Help: "Total number of customers registered.",
		}),
		ApplicationsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "aurum_applications_submitted_total",
			Help: "Total number of loan applications submitted.",
		}),
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aurum_officer_decisions_total",
			Help: "Officer decisions by outcome.",
		}, []string{"outcome"}),
		NotificationsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "aurum_notifications_written_total",
			Help: "Total number of customer notifications written.",
		}),
	}
}

// IncDecision records one officer decision outcome.
func (m *Metrics) IncDecision(outcome string) {
	m.Decisions.WithLabelValues(outcome).Inc()
}
