package search

import (
	"fmt"
	"math"
)

// Expander generates the children of a node and counts expansions.
// Children come back Unplaced; Admit stores the ones that are kept in the
// Tree shared with the owning search.
type Expander[C comparable] struct {
	tree    *Tree[C]
	metrics *Metrics
}

// NewExpander returns an Expander that allocates nodes in tree and reports
// into metrics. The "Expanded nodes" counter starts at zero.
func NewExpander[C comparable](tree *Tree[C], metrics *Metrics) *Expander[C] {
	x := &Expander[C]{tree: tree, metrics: metrics}
	x.ClearMetrics()

	return x
}

// ClearMetrics resets the "Expanded nodes" counter to zero.
func (x *Expander[C]) ClearMetrics() {
	x.metrics.SetInt(MetricExpandedNodes, 0)
}

// Expand applies every applicable operator to n.Config and returns one
// Unplaced child per operator, in the order the operators were returned.
// The "Expanded nodes" counter grows by one per call, not per child.
//
// Returns an error wrapping ErrTransition if the transition model rejects an
// operator it declared applicable, or ErrNegativeStepCost for a negative or
// NaN step cost.
func (x *Expander[C]) Expand(n Node[C], p *Problem[C]) ([]Node[C], error) {
	ops := p.Actions(n.Config)
	children := make([]Node[C], 0, len(ops))
	for _, op := range ops {
		next, err := p.Result(n.Config, op)
		if err != nil {
			return nil, fmt.Errorf("%w: %v on %v: %w", ErrTransition, op, n.Config, err)
		}
		cost := p.StepCost(n.Config, op, next)
		if cost < 0 || math.IsNaN(cost) {
			return nil, fmt.Errorf("%w: %v on %v cost %g", ErrNegativeStepCost, op, n.Config, cost)
		}
		children = append(children, Derive(n, next, op, cost))
	}
	x.metrics.SetInt(MetricExpandedNodes, x.metrics.Int(MetricExpandedNodes)+1)

	return children, nil
}

// Admit stores child in the tree and returns it with its ID set.
func (x *Expander[C]) Admit(child Node[C]) Node[C] { return x.tree.Admit(child) }
