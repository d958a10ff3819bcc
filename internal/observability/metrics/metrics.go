package metrics

import "github.com/prometheus/client_golang/prometheus"

// AppMetrics exposes counters for the session, navigation and booking flows.
type AppMetrics struct {
	loginsTotal        *prometheus.CounterVec
	navigationsTotal   *prometheus.CounterVec
	bookingsTotal      prometheus.Counter
	partnerActionTotal *prometheus.CounterVec
}

func NewAppMetrics(reg prometheus.Registerer) *AppMetrics {
	m := &AppMetrics{
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luxuria",
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Total logins by role",
		}, []string{"role"}),
		navigationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luxuria",
			Subsystem: "navigation",
			Name:      "transitions_total",
			Help:      "Total navigation transitions by target route",
		}, []string{"route"}),
		bookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luxuria",
			Subsystem: "booking",
			Name:      "completed_total",
			Help:      "Total completed booking wizards",
		}),
		partnerActionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luxuria",
			Subsystem: "partner",
			Name:      "request_actions_total",
			Help:      "Total partner booking request accepts/declines",
		}, []string{"action"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.loginsTotal, m.navigationsTotal, m.bookingsTotal, m.partnerActionTotal)
	return m
}

func (m *AppMetrics) ObserveLogin(role string) {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues(role).Inc()
}

func (m *AppMetrics) ObserveNavigation(route string) {
	if m == nil {
		return
	}
	m.navigationsTotal.WithLabelValues(route).Inc()
}

func (m *AppMetrics) ObserveBookingCompleted() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}

func (m *AppMetrics) ObservePartnerAction(action string) {
	if m == nil {
		return
	}
	m.partnerActionTotal.WithLabelValues(action).Inc()
}
