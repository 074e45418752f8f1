package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/pushdown"
	"github.com/atlekbai/pushdown/languages"
	"github.com/atlekbai/pushdown/metrics"
)

func TestCollector_CountsRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	builder := languages.AnBn().Builder(pushdown.WithObserver(collector))
	builder.Accepts('a', 'b')      // 3 steps: 2 processing, 1 accept
	builder.Accepts('a', 'a', 'b') // 4 steps: 3 processing, 1 reject
	builder.Accepts('b')           // 1 step: 1 reject

	expected := `
# HELP pushdown_runs_total Total number of finished runs by verdict
# TYPE pushdown_runs_total counter
pushdown_runs_total{verdict="Accept"} 1
pushdown_runs_total{verdict="NotAccepting"} 2
# HELP pushdown_steps_total Total number of evaluated automaton steps by verdict
# TYPE pushdown_steps_total counter
pushdown_steps_total{verdict="Accept"} 1
pushdown_steps_total{verdict="NotAccepting"} 2
pushdown_steps_total{verdict="Processing"} 5
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected), "pushdown_runs_total", "pushdown_steps_total")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "pushdown_run_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	assert.Error(t, err)
}

func TestNewCollector_RollsBackOnPartialFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pushdown_run_steps",
		Help: "Conflicting metric",
	})
	require.NoError(t, reg.Register(clash))

	_, err := metrics.NewCollector(reg)
	require.Error(t, err)

	// Counters registered before the clash must be gone, or a retry would
	// fail with AlreadyRegisteredError.
	require.True(t, reg.Unregister(clash))
	_, err = metrics.NewCollector(reg)
	assert.NoError(t, err)
}
