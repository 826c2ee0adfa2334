package search

import "github.com/katalvlaran/statespace/frontier"

// TreeSearch is the expansion strategy without any bookkeeping: every child
// goes to the frontier, so a configuration reachable by several paths is
// expanded once per path. On a search space with cycles it only terminates
// when the frontier discipline reaches a goal first (breadth-first does,
// depth-first may not).
type TreeSearch[C comparable] struct{}

// NewTreeSearch returns the TreeSearch strategy.
func NewTreeSearch[C comparable]() *TreeSearch[C] { return &TreeSearch[C]{} }

// Reset is a no-op; TreeSearch keeps no state.
func (*TreeSearch[C]) Reset() {}

// Pop dequeues the next node.
func (*TreeSearch[C]) Pop(f frontier.Queue[Node[C]]) (Node[C], error) { return f.Dequeue() }

// Remove deletes n from f.
func (*TreeSearch[C]) Remove(f frontier.Queue[Node[C]], n Node[C]) bool { return f.Remove(n) }

// Successors admits and returns every child of n.
func (*TreeSearch[C]) Successors(n Node[C], p *Problem[C], x *Expander[C]) ([]Node[C], error) {
	children, err := x.Expand(n, p)
	if err != nil {
		return nil, err
	}
	for i, child := range children {
		children[i] = x.Admit(child)
	}

	return children, nil
}
