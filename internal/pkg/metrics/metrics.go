package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	RouterDecisions  *prometheus.CounterVec   // Routing outcomes by agent label
	DispatchFailures *prometheus.CounterVec   // Failed requests by stage
	ResponderLatency *prometheus.HistogramVec // Answer generation time by agent
	StreamEvents     *prometheus.CounterVec   // Events written to streaming clients
	WorkerInFlight   prometheus.Gauge         // Jobs currently holding a pool slot
}

// NewMetrics creates and registers the collectors. Pass a fresh registry in
// tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	routerDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "router_decisions_total",
		Help: "Total number of routing decisions per selected agent",
	}, []string{"agent"})

	dispatchFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_failures_total",
		Help: "Total number of dispatch failures per stage",
	}, []string{"stage"})

	responderLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "responder_latency_seconds",
		Help:    "Time spent producing an answer per agent",
		Buckets: prometheus.DefBuckets,
	}, []string{"agent"})

	streamEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stream_events_total",
		Help: "Total number of streaming events emitted per agent",
	}, []string{"agent"})

	workerInFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "worker_pool_in_flight",
		Help: "Current number of dispatch jobs running on the worker pool",
	})

	reg.MustRegister(routerDecisions)
	reg.MustRegister(dispatchFailures)
	reg.MustRegister(responderLatency)
	reg.MustRegister(streamEvents)
	reg.MustRegister(workerInFlight)

	return &Metrics{
		RouterDecisions:  routerDecisions,
		DispatchFailures: dispatchFailures,
		ResponderLatency: responderLatency,
		StreamEvents:     streamEvents,
		WorkerInFlight:   workerInFlight,
	}
}

// NewNop returns collectors registered nowhere
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
