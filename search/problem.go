package search

import "fmt"

// ActionsFunc returns the operators applicable to a configuration.
// It must be a pure function of its argument.
type ActionsFunc[C comparable] func(cfg C) []Operator

// ResultFunc returns the configuration reached by applying op to cfg.
// An error means op was not applicable to cfg.
type ResultFunc[C comparable] func(cfg C, op Operator) (C, error)

// GoalFunc reports whether cfg is a goal configuration.
type GoalFunc[C comparable] func(cfg C) bool

// StepCostFunc returns the non-negative cost of moving from one
// configuration to another with op.
type StepCostFunc[C comparable] func(from C, op Operator, to C) float64

// UnitStepCost charges exactly 1 for every step. It is the default cost.
func UnitStepCost[C comparable](C, Operator, C) float64 { return 1 }

// Domain is the interface form of a problem description. Implementations
// that also implement StepCoster supply their own step cost.
type Domain[C comparable] interface {
	Actions(cfg C) []Operator
	Result(cfg C, op Operator) (C, error)
	IsGoal(cfg C) bool
}

// StepCoster is optionally implemented by a Domain with non-unit step costs.
type StepCoster[C comparable] interface {
	StepCost(from C, op Operator, to C) float64
}

// Problem bundles an initial configuration with the four functions that
// define the search space. It is immutable once built.
type Problem[C comparable] struct {
	initial  C
	actions  ActionsFunc[C]
	result   ResultFunc[C]
	goal     GoalFunc[C]
	stepCost StepCostFunc[C]
}

// ProblemOption customizes a Problem at construction time.
type ProblemOption[C comparable] func(*problemConfig[C])

type problemConfig[C comparable] struct {
	stepCost StepCostFunc[C]
	err      error
}

// WithStepCost replaces the default unit step cost. A nil fn is rejected
// with ErrOptionViolation.
func WithStepCost[C comparable](fn StepCostFunc[C]) ProblemOption[C] {
	return func(c *problemConfig[C]) {
		if fn == nil {
			c.err = fmt.Errorf("%w: step cost function is nil", ErrOptionViolation)
			return
		}
		c.stepCost = fn
	}
}

// NewProblem validates and bundles a search problem.
// Returns ErrNilActions, ErrNilResult or ErrNilGoal for missing functions,
// or ErrOptionViolation for a bad option.
func NewProblem[C comparable](
	initial C,
	actions ActionsFunc[C],
	result ResultFunc[C],
	goal GoalFunc[C],
	opts ...ProblemOption[C],
) (*Problem[C], error) {
	switch {
	case actions == nil:
		return nil, ErrNilActions
	case result == nil:
		return nil, ErrNilResult
	case goal == nil:
		return nil, ErrNilGoal
	}

	cfg := problemConfig[C]{stepCost: UnitStepCost[C]}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Problem[C]{
		initial:  initial,
		actions:  actions,
		result:   result,
		goal:     goal,
		stepCost: cfg.stepCost,
	}, nil
}

// FromDomain builds a Problem from a Domain. If d implements StepCoster its
// StepCost is used, otherwise the unit cost. Explicit options win over both.
func FromDomain[C comparable](initial C, d Domain[C], opts ...ProblemOption[C]) (*Problem[C], error) {
	if d == nil {
		return nil, ErrNilDomain
	}
	if sc, ok := d.(StepCoster[C]); ok {
		opts = append([]ProblemOption[C]{WithStepCost[C](sc.StepCost)}, opts...)
	}

	return NewProblem(initial, d.Actions, d.Result, d.IsGoal, opts...)
}

// Initial returns the initial configuration.
func (p *Problem[C]) Initial() C { return p.initial }

// Actions returns the operators applicable to cfg.
func (p *Problem[C]) Actions(cfg C) []Operator { return p.actions(cfg) }

// Result applies op to cfg.
func (p *Problem[C]) Result(cfg C, op Operator) (C, error) { return p.result(cfg, op) }

// IsGoal reports whether cfg satisfies the goal test.
func (p *Problem[C]) IsGoal(cfg C) bool { return p.goal(cfg) }

// StepCost returns the cost of the step from -> to via op.
func (p *Problem[C]) StepCost(from C, op Operator, to C) float64 {
	return p.stepCost(from, op, to)
}
