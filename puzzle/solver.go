package puzzle

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/statespace/search"
)

// Rules is the sliding-puzzle search domain for one board size: the legal
// gap moves, the transition they cause, and the solved board as goal.
type Rules struct {
	goal Board
}

var _ search.Domain[Board] = Rules{}

// NewRules returns the rules for rows×cols boards.
func NewRules(rows, cols int) (Rules, error) {
	goal, err := NewBoard(rows, cols)
	if err != nil {
		return Rules{}, err
	}

	return Rules{goal: goal}, nil
}

// Goal returns the solved board.
func (r Rules) Goal() Board { return r.goal }

// Actions returns the legal gap moves of b.
func (r Rules) Actions(b Board) []search.Operator { return b.Moves() }

// Result applies op to b.
func (r Rules) Result(b Board, op search.Operator) (Board, error) { return b.Move(op) }

// IsGoal reports whether b is the solved board of this size.
func (r Rules) IsGoal(b Board) bool { return b == r.goal }

// NewProblem returns the search problem that starts at initial.
// Returns ErrDimensionMismatch if initial is not of the rules' size.
func (r Rules) NewProblem(initial Board) (*search.Problem[Board], error) {
	if initial.Rows() != r.goal.Rows() || initial.Cols() != r.goal.Cols() {
		return nil, fmt.Errorf("%w: board is %dx%d, rules are %dx%d",
			ErrDimensionMismatch, initial.Rows(), initial.Cols(), r.goal.Rows(), r.goal.Cols())
	}

	return search.FromDomain[Board](initial, r)
}

// Option configures a Solver.
type Option func(*Options)

// Options holds Solver settings.
type Options struct {
	// Logger receives search debug records and one record per solve.
	Logger *slog.Logger
	// OnExpand is called with every board the search expands.
	OnExpand func(b Board)
}

// DefaultOptions returns a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		OnExpand: func(Board) {},
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run for every expanded board.
func WithOnExpand(fn func(b Board)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Solver solves rows×cols sliding puzzles with breadth- or depth-first
// graph search. A Solver is not safe for concurrent use; the metrics of
// the last Solve are kept until the next one.
type Solver struct {
	rules   Rules
	opts    Options
	bfs     *search.BreadthFirst[Board]
	dfs     *search.DepthFirst[Board]
	metrics *search.Metrics
}

// NewSolver returns a solver for rows×cols boards.
func NewSolver(rows, cols int, opts ...Option) (*Solver, error) {
	rules, err := NewRules(rows, cols)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	searchOpts := []search.Option[Board]{
		search.WithLogger[Board](o.Logger),
		search.WithOnExpand(func(n search.Node[Board]) { o.OnExpand(n.Config) }),
	}
	bfs, err := search.NewBreadthFirst[Board](nil, searchOpts...)
	if err != nil {
		return nil, err
	}
	dfs, err := search.NewDepthFirst[Board](nil, searchOpts...)
	if err != nil {
		return nil, err
	}

	return &Solver{
		rules:   rules,
		opts:    o,
		bfs:     bfs,
		dfs:     dfs,
		metrics: search.NewMetrics(),
	}, nil
}

// Rules returns the domain the solver searches.
func (s *Solver) Rules() Rules { return s.rules }

// Solve returns the gap moves that take initial to the solved board:
// [NoOp] if it is already solved, an empty slice if no solution exists.
func (s *Solver) Solve(initial Board, strategy Strategy) ([]search.Operator, error) {
	p, err := s.rules.NewProblem(initial)
	if err != nil {
		return nil, err
	}

	var searcher search.Searcher[Board]
	switch strategy {
	case BFS:
		searcher = s.bfs
	case DFS:
		searcher = s.dfs
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}

	ops, err := searcher.Search(p)
	s.metrics = searcher.Metrics()
	if err != nil {
		return nil, fmt.Errorf("puzzle: solve %v with %v: %w", initial, strategy, err)
	}
	s.opts.Logger.Info("puzzle solved",
		"strategy", strategy.String(),
		"moves", len(ops),
		"expanded", s.metrics.ExpandedNodes(),
		"max_queue", s.metrics.MaxQueueSize())

	return ops, nil
}

// Metrics returns a snapshot of the metrics of the last Solve.
func (s *Solver) Metrics() *search.Metrics { return s.metrics.Clone() }

// OperatedPosition returns the cell whose tile moves into the gap when op is
// applied to b, that is, the gap's neighbour in the direction of op.
func (s *Solver) OperatedPosition(b Board, op search.Operator) (Position, error) {
	to, err := b.Gap().Toward(op)
	if err != nil {
		return Position{}, err
	}
	if !b.InBounds(to) {
		return Position{}, fmt.Errorf("%w: %s with gap at %v", ErrIllegalMove, op.Name(), b.Gap())
	}

	return to, nil
}

// Apply replays ops on b and returns the final board. NoOp steps are skipped.
func Apply(b Board, ops []search.Operator) (Board, error) {
	for i, op := range ops {
		if op.IsNoOp() {
			continue
		}
		next, err := b.Move(op)
		if err != nil {
			return b, fmt.Errorf("step %d: %w", i, err)
		}
		b = next
	}

	return b, nil
}
