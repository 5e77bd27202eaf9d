package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

var (
	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sustainability_dashboard",
			Name:      "events_total",
			Help:      "Dashboard events dispatched, partitioned by event kind and outcome.",
		},
		[]string{"event", "outcome"},
	)

	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sustainability_dashboard",
			Name:      "renders_total",
			Help:      "Rendered dashboard pages, partitioned by view.",
		},
		[]string{"view"},
	)

	exportRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sustainability_dashboard",
			Name:      "export_requests_total",
			Help:      "Export menu requests, partitioned by requested format.",
		},
		[]string{"format"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sustainability_dashboard",
			Name:      "active_sessions",
			Help:      "Dashboard sessions currently held in memory.",
		},
	)
)

// Register attaches dashboard collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		eventsTotal,
		rendersTotal,
		exportRequestsTotal,
		activeSessions,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveEvent records a dispatched event; any outcome other than applied counts as rejected.
func ObserveEvent(kind, outcome string) {
	label := outcome
	if label != OutcomeApplied {
		label = OutcomeRejected
	}
	eventsTotal.WithLabelValues(kind, label).Inc()
}

func ObserveRender(view string) {
	rendersTotal.WithLabelValues(view).Inc()
}

func ObserveExport(format string) {
	exportRequestsTotal.WithLabelValues(format).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
