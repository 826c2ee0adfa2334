package search

import "log/slog"

// Option configures a QueueSearch (and the façades built on it) via
// functional arguments.
type Option[C comparable] func(*Options[C])

// Options holds the logger and hooks used during a search run.
type Options[C comparable] struct {
	// Logger receives debug records for every expansion and every node
	// added to the frontier. Defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnEnqueue is called for every node added to the frontier, the root
	// included.
	OnEnqueue func(n Node[C])

	// OnExpand is called right before a node is expanded, after it passed
	// (or skipped) the goal test.
	OnExpand func(n Node[C])

	// OnGoal is called once with the node that satisfied the goal test.
	OnGoal func(n Node[C])
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions[C comparable]() Options[C] {
	return Options[C]{
		Logger:    slog.New(slog.DiscardHandler),
		OnEnqueue: func(Node[C]) {},
		OnExpand:  func(Node[C]) {},
		OnGoal:    func(Node[C]) {},
	}
}

// WithLogger sets the logger for debug records. A nil logger is ignored.
func WithLogger[C comparable](l *slog.Logger) Option[C] {
	return func(o *Options[C]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback run for every node added to the frontier.
func WithOnEnqueue[C comparable](fn func(n Node[C])) Option[C] {
	return func(o *Options[C]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback run right before a node is expanded.
func WithOnExpand[C comparable](fn func(n Node[C])) Option[C] {
	return func(o *Options[C]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback run with the goal node of a successful search.
func WithOnGoal[C comparable](fn func(n Node[C])) Option[C] {
	return func(o *Options[C]) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}
