package search

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/katalvlaran/statespace/frontier"
)

// Expansion is the strategy that decides which children of an expanded node
// enter the frontier, and keeps any bookkeeping of its own consistent with
// the frontier. GraphSearch and TreeSearch are the two implementations.
type Expansion[C comparable] interface {
	// Reset clears all per-run state. It is called at the start of every Search.
	Reset()

	// Pop removes the next node from f.
	Pop(f frontier.Queue[Node[C]]) (Node[C], error)

	// Remove deletes n from f and reports whether it was there.
	Remove(f frontier.Queue[Node[C]], n Node[C]) bool

	// Successors expands n with x and returns the children to add to the
	// frontier, each stored in the tree through x.Admit.
	Successors(n Node[C], p *Problem[C], x *Expander[C]) ([]Node[C], error)
}

// QueueSearch is the generic frontier-driven search loop. The frontier
// discipline (FIFO, LIFO, priority) is chosen per call, the expansion
// strategy and the goal-test timing once at construction.
//
// A QueueSearch may be reused for any number of sequential searches; all
// run state is reset at the start of Search. It is not safe for concurrent use.
type QueueSearch[C comparable] struct {
	timing    GoalTestTiming
	expansion Expansion[C]
	opts      Options[C]

	tree     Tree[C]
	metrics  *Metrics
	expander *Expander[C]
	frontier frontier.Queue[Node[C]] // frontier of the current or last run
	debug    bool
}

// NewQueueSearch builds a search loop over the given expansion strategy.
// Returns ErrNilExpansion for a nil strategy, or ErrOptionViolation for an
// unknown timing.
func NewQueueSearch[C comparable](exp Expansion[C], timing GoalTestTiming, opts ...Option[C]) (*QueueSearch[C], error) {
	if exp == nil {
		return nil, ErrNilExpansion
	}
	if !timing.valid() {
		return nil, fmt.Errorf("%w: unknown goal test timing %d", ErrOptionViolation, int(timing))
	}
	o := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&o)
	}

	s := &QueueSearch[C]{
		timing:    timing,
		expansion: exp,
		opts:      o,
		metrics:   NewMetrics(),
	}
	s.expander = NewExpander(&s.tree, s.metrics)
	s.ClearMetrics()

	return s, nil
}

// Timing returns the goal-test timing fixed at construction.
func (s *QueueSearch[C]) Timing() GoalTestTiming { return s.timing }

// Expansion returns the expansion strategy.
func (s *QueueSearch[C]) Expansion() Expansion[C] { return s.expansion }

// Metrics returns a snapshot of the metrics of the last run.
func (s *QueueSearch[C]) Metrics() *Metrics { return s.metrics.Clone() }

// ClearMetrics sets every standard metric back to zero.
func (s *QueueSearch[C]) ClearMetrics() {
	s.expander.ClearMetrics()
	s.metrics.SetInt(MetricQueueSize, 0)
	s.metrics.SetInt(MetricMaxQueueSize, 0)
	s.metrics.SetReal(MetricPathCost, 0)
}

// Search explores p using f as the frontier and returns the operators that
// lead from the initial configuration to a goal.
//
//   - If the initial configuration is a goal, the result is [NoOp].
//   - If the frontier runs dry without reaching a goal, the result is an empty
//     slice and a nil error: failure is an outcome, not an error.
//
// Errors are reserved for bad arguments (ErrNilProblem, ErrNilFrontier,
// ErrFrontierNotEmpty), collaborator failures (ErrTransition,
// ErrNegativeStepCost) and frontier contract violations (frontier.ErrEmpty).
func (s *QueueSearch[C]) Search(p *Problem[C], f frontier.Queue[Node[C]]) ([]Operator, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if isNilQueue(f) {
		return nil, ErrNilFrontier
	}
	if f.Len() != 0 {
		return nil, fmt.Errorf("%w: %d nodes queued", ErrFrontierNotEmpty, f.Len())
	}

	s.expansion.Reset()
	s.tree.Reset()
	s.ClearMetrics()
	s.frontier = f
	s.debug = s.opts.Logger.Enabled(context.Background(), slog.LevelDebug)

	root := s.tree.Root(p.Initial())
	if s.timing == BeforeEnqueue && p.IsGoal(root.Config) {
		return s.solution(root), nil
	}
	s.enqueue(root)
	s.setQueueSizes(f.Len())

	for f.Len() > 0 {
		node, err := s.expansion.Pop(f)
		if err != nil {
			return nil, fmt.Errorf("search: pop with %d nodes queued: %w", f.Len(), err)
		}
		s.setQueueSizes(f.Len())

		if s.timing == AfterDequeue && p.IsGoal(node.Config) {
			return s.solution(node), nil
		}

		s.opts.OnExpand(node)
		if s.debug {
			s.opts.Logger.Debug("expanding node", "node", node, "depth", node.Depth)
		}
		children, err := s.expansion.Successors(node, p, s.expander)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if s.timing == BeforeEnqueue && p.IsGoal(child.Config) {
				return s.solution(child), nil
			}
			s.enqueue(child)
		}
		s.setQueueSizes(f.Len())
	}

	return []Operator{}, nil
}

// RemoveNodeFromFrontier removes n from the frontier of the current (or
// last) run through the expansion strategy, so its bookkeeping stays in sync.
func (s *QueueSearch[C]) RemoveNodeFromFrontier(n Node[C]) bool {
	if s.frontier == nil {
		return false
	}

	return s.expansion.Remove(s.frontier, n)
}

// enqueue adds n to the frontier and fires the hooks.
func (s *QueueSearch[C]) enqueue(n Node[C]) {
	s.frontier.Enqueue(n)
	s.opts.OnEnqueue(n)
	if s.debug {
		s.opts.Logger.Debug("adding node to frontier", "node", n, "depth", n.Depth)
	}
}

// solution records the path cost of goal and returns its operators.
func (s *QueueSearch[C]) solution(goal Node[C]) []Operator {
	s.metrics.SetReal(MetricPathCost, goal.PathCost)
	s.opts.OnGoal(goal)
	ops := OperatorsFromPath(s.tree.PathFromRoot(goal))
	if s.debug {
		s.opts.Logger.Debug("goal reached", "node", goal, "steps", goal.Depth)
	}

	return ops
}

// setQueueSizes records the current frontier size and its high-water mark.
func (s *QueueSearch[C]) setQueueSizes(size int) {
	s.metrics.SetInt(MetricQueueSize, size)
	if size > s.metrics.Int(MetricMaxQueueSize) {
		s.metrics.SetInt(MetricMaxQueueSize, size)
	}
}

// isNilQueue reports whether f is nil or wraps a nil pointer, such as a
// (*frontier.FIFO[T])(nil).
func isNilQueue[T any](f frontier.Queue[T]) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
