package search

import "github.com/katalvlaran/statespace/frontier"

// GraphSearch is the expansion strategy that never expands a configuration
// twice. It keeps an explored set and a cache of the configurations waiting
// in the frontier; a child enters the frontier only if its configuration is
// in neither.
//
// When a configuration already waiting in the frontier is reached again by a
// cheaper path, the waiting node is kept: the first path found wins. That is
// sound for uninformed strategies; a cost-aware strategy would compare
// PathCost and swap the nodes through Remove.
//
// The zero value is ready to use.
type GraphSearch[C comparable] struct {
	explored map[C]struct{}
	order    []C // explored configurations, in expansion order
	cache    map[C]Node[C]
}

// NewGraphSearch returns an empty GraphSearch strategy.
func NewGraphSearch[C comparable]() *GraphSearch[C] {
	g := &GraphSearch[C]{}
	g.Reset()

	return g
}

// Reset clears the explored set and the frontier cache.
func (g *GraphSearch[C]) Reset() {
	if g.explored == nil {
		g.explored = make(map[C]struct{})
		g.cache = make(map[C]Node[C])
	}
	clear(g.explored)
	clear(g.cache)
	clear(g.order)
	g.order = g.order[:0]
}

// Pop dequeues the next node and drops it from the frontier cache.
func (g *GraphSearch[C]) Pop(f frontier.Queue[Node[C]]) (Node[C], error) {
	n, err := f.Dequeue()
	if err != nil {
		return n, err
	}
	delete(g.cache, n.Config)

	return n, nil
}

// Remove deletes n from f and, if it was there, from the frontier cache.
func (g *GraphSearch[C]) Remove(f frontier.Queue[Node[C]], n Node[C]) bool {
	if !f.Remove(n) {
		return false
	}
	delete(g.cache, n.Config)

	return true
}

// Successors marks n explored, expands it, and admits and returns the
// children whose configuration is neither explored nor already waiting in
// the frontier. Rejected children are never stored in the tree.
func (g *GraphSearch[C]) Successors(n Node[C], p *Problem[C], x *Expander[C]) ([]Node[C], error) {
	if g.explored == nil {
		g.Reset()
	}
	if _, seen := g.explored[n.Config]; !seen {
		g.explored[n.Config] = struct{}{}
		g.order = append(g.order, n.Config)
	}

	children, err := x.Expand(n, p)
	if err != nil {
		return nil, err
	}
	add := children[:0]
	for _, child := range children {
		if _, waiting := g.cache[child.Config]; waiting {
			continue // first-discovered path wins
		}
		if _, done := g.explored[child.Config]; done {
			continue
		}
		child = x.Admit(child)
		add = append(add, child)
		g.cache[child.Config] = child
	}

	return add, nil
}

// IsExplored reports whether cfg has been expanded in the current run.
func (g *GraphSearch[C]) IsExplored(cfg C) bool {
	_, ok := g.explored[cfg]

	return ok
}

// Explored returns the expanded configurations in expansion order.
func (g *GraphSearch[C]) Explored() []C {
	out := make([]C, len(g.order))
	copy(out, g.order)

	return out
}

// InFrontier returns the frontier node cached for cfg, if any.
func (g *GraphSearch[C]) InFrontier(cfg C) (Node[C], bool) {
	n, ok := g.cache[cfg]

	return n, ok
}
