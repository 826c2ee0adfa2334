package search

import "github.com/katalvlaran/statespace/frontier"

// Searcher is a ready-to-run strategy: it owns its frontier discipline and
// goal-test timing, and exposes the metrics of its last run.
type Searcher[C comparable] interface {
	Search(p *Problem[C]) ([]Operator, error)
	Metrics() *Metrics
}

// BreadthFirst explores the shallowest nodes first using a FIFO frontier and
// tests goals when nodes are generated.
type BreadthFirst[C comparable] struct {
	engine *QueueSearch[C]
}

// NewBreadthFirst returns a breadth-first searcher over exp.
// A nil exp selects a fresh GraphSearch.
func NewBreadthFirst[C comparable](exp Expansion[C], opts ...Option[C]) (*BreadthFirst[C], error) {
	if exp == nil {
		exp = NewGraphSearch[C]()
	}
	engine, err := NewQueueSearch(exp, BeforeEnqueue, opts...)
	if err != nil {
		return nil, err
	}

	return &BreadthFirst[C]{engine: engine}, nil
}

// Search runs breadth-first search on p with a fresh FIFO frontier.
func (b *BreadthFirst[C]) Search(p *Problem[C]) ([]Operator, error) {
	return b.engine.Search(p, frontier.NewFIFO[Node[C]]())
}

// Metrics returns a snapshot of the metrics of the last run.
func (b *BreadthFirst[C]) Metrics() *Metrics { return b.engine.Metrics() }

// Engine returns the underlying search loop.
func (b *BreadthFirst[C]) Engine() *QueueSearch[C] { return b.engine }

// String returns the strategy name.
func (b *BreadthFirst[C]) String() string { return "BreadthFirstSearch" }

// DepthFirst explores the deepest nodes first using a LIFO frontier and
// tests goals when nodes leave the frontier. It makes no optimality claim.
type DepthFirst[C comparable] struct {
	engine *QueueSearch[C]
}

// NewDepthFirst returns a depth-first searcher over exp.
// A nil exp selects a fresh GraphSearch.
func NewDepthFirst[C comparable](exp Expansion[C], opts ...Option[C]) (*DepthFirst[C], error) {
	if exp == nil {
		exp = NewGraphSearch[C]()
	}
	engine, err := NewQueueSearch(exp, AfterDequeue, opts...)
	if err != nil {
		return nil, err
	}

	return &DepthFirst[C]{engine: engine}, nil
}

// Search runs depth-first search on p with a fresh LIFO frontier.
func (d *DepthFirst[C]) Search(p *Problem[C]) ([]Operator, error) {
	return d.engine.Search(p, frontier.NewLIFO[Node[C]]())
}

// Metrics returns a snapshot of the metrics of the last run.
func (d *DepthFirst[C]) Metrics() *Metrics { return d.engine.Metrics() }

// Engine returns the underlying search loop.
func (d *DepthFirst[C]) Engine() *QueueSearch[C] { return d.engine }

// String returns the strategy name.
func (d *DepthFirst[C]) String() string { return "DepthFirstSearch" }
