// Package metrics exposes automaton verdicts as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atlekbai/pushdown"
)

// Collector counts steps and runs by verdict. It implements pushdown.Observer.
type Collector struct {
	steps    *prometheus.CounterVec
	runs     *prometheus.CounterVec
	runSteps prometheus.Histogram
}

var _ pushdown.Observer = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg. If any
// metric fails to register, the ones already registered are removed again.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushdown_steps_total",
				Help: "Total number of evaluated automaton steps by verdict",
			},
			[]string{"verdict"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pushdown_runs_total",
				Help: "Total number of finished runs by verdict",
			},
			[]string{"verdict"},
		),
		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pushdown_run_steps",
				Help:    "Number of steps taken by a finished run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}

	var registered []prometheus.Collector
	for _, m := range []prometheus.Collector{c.steps, c.runs, c.runSteps} {
		if err := reg.Register(m); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, err
		}
		registered = append(registered, m)
	}
	return c, nil
}

// StepObserved counts one step.
func (c *Collector) StepObserved(verdict pushdown.Verdict) {
	c.steps.WithLabelValues(verdict.String()).Inc()
}

// RunFinished counts one run and records its length.
func (c *Collector) RunFinished(verdict pushdown.Verdict, steps int) {
	c.runs.WithLabelValues(verdict.String()).Inc()
	c.runSteps.Observe(float64(steps))
}
