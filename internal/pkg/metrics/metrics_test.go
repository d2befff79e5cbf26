package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RouterDecisions.WithLabelValues("billing_agent").Inc()
	m.RouterDecisions.WithLabelValues("billing_agent").Inc()
	m.DispatchFailures.WithLabelValues("route").Inc()
	m.WorkerInFlight.Set(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RouterDecisions.WithLabelValues("billing_agent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchFailures.WithLabelValues("route")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WorkerInFlight))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "router_decisions_total")
	assert.Contains(t, names, "worker_pool_in_flight")
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}
