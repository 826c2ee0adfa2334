package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/statespace/search"
)

// Outcome classifies a finished search run.
type Outcome string

const (
	// OutcomeSolved means a non-empty plan was found.
	OutcomeSolved Outcome = "solved"
	// OutcomeTrivial means the initial configuration already was a goal.
	OutcomeTrivial Outcome = "trivial"
	// OutcomeNoSolution means the search space was exhausted.
	OutcomeNoSolution Outcome = "no_solution"
	// OutcomeError means the run stopped with an error.
	OutcomeError Outcome = "error"
)

// Classify maps the result of a search to its Outcome.
func Classify(ops []search.Operator, err error) Outcome {
	switch {
	case err != nil:
		return OutcomeError
	case len(ops) == 0:
		return OutcomeNoSolution
	case len(ops) == 1 && ops[0].IsNoOp():
		return OutcomeTrivial
	default:
		return OutcomeSolved
	}
}

// Collector holds the Prometheus instruments for search runs.
// All methods are safe for concurrent use.
type Collector struct {
	// ExpandedNodes is the "Expanded nodes" count of the last run, by strategy.
	ExpandedNodes *prometheus.GaugeVec
	// MaxQueueSize is the frontier high-water mark of the last run, by strategy.
	MaxQueueSize *prometheus.GaugeVec
	// PathCost is the solution cost of the last run, by strategy.
	PathCost *prometheus.GaugeVec
	// ExpandedTotal accumulates expanded nodes over all runs, by strategy.
	ExpandedTotal *prometheus.CounterVec
	// RunsTotal counts runs by strategy and outcome.
	RunsTotal *prometheus.CounterVec
	// RunDuration measures wall time per run, by strategy.
	RunDuration *prometheus.HistogramVec
}

// NewCollector creates the instruments under namespace and registers them
// with reg. A nil reg creates unregistered instruments.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)

	return &Collector{
		ExpandedNodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_nodes",
			Help:      "Nodes expanded by the last search run",
		}, []string{"strategy"}),
		MaxQueueSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "max_queue_size",
			Help:      "Frontier high-water mark of the last search run",
		}, []string{"strategy"}),
		PathCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "path_cost",
			Help:      "Solution path cost of the last search run (0 when unsolved)",
		}, []string{"strategy"}),
		ExpandedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_nodes_total",
			Help:      "Nodes expanded over all search runs",
		}, []string{"strategy"}),
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Search runs by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "run_duration_seconds",
			Help:      "Search run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"strategy"}),
	}
}

// Observe records one finished run. m may be nil for runs that failed
// before producing metrics; then only the run counter and duration move.
func (c *Collector) Observe(strategy string, m *search.Metrics, outcome Outcome, d time.Duration) {
	c.RunsTotal.WithLabelValues(strategy, string(outcome)).Inc()
	c.RunDuration.WithLabelValues(strategy).Observe(d.Seconds())
	if m == nil {
		return
	}
	c.ExpandedNodes.WithLabelValues(strategy).Set(float64(m.ExpandedNodes()))
	c.MaxQueueSize.WithLabelValues(strategy).Set(float64(m.MaxQueueSize()))
	c.PathCost.WithLabelValues(strategy).Set(m.PathCost())
	c.ExpandedTotal.WithLabelValues(strategy).Add(float64(m.ExpandedNodes()))
}
