package search

import "fmt"

// NodeID addresses a node inside the Tree that created it.
type NodeID int

const (
	// NoParent is the Parent of a root node.
	NoParent NodeID = -1
	// Unplaced is the ID of a generated node not yet admitted to a Tree.
	Unplaced NodeID = -2
)

// Node is one record of the search tree: a configuration, the link to the
// node it was generated from, the operator that generated it, and the
// accumulated path cost g(n) from the root.
//
// Nodes are immutable values. Equal looks only at the configuration, so two
// nodes reached by different paths are the same node for deduplication;
// Less looks only at the path cost, for priority frontiers.
type Node[C comparable] struct {
	ID       NodeID   // handle inside the owning Tree, Unplaced until admitted
	Parent   NodeID   // NoParent for the root
	Config   C        // problem configuration this node represents
	Op       Operator // operator applied to Parent; zero for the root
	PathCost float64  // cost from the root, 0 for the root
	Depth    int      // number of steps from the root
}

// IsRoot reports whether n has no parent.
func (n Node[C]) IsRoot() bool { return n.Parent == NoParent }

// Equal reports whether n and o hold the same configuration.
// Path and cost are deliberately ignored.
func (n Node[C]) Equal(o Node[C]) bool { return n.Config == o.Config }

// Less orders nodes by path cost only.
func (n Node[C]) Less(o Node[C]) bool { return n.PathCost < o.PathCost }

// String renders the node without its parent or operator.
func (n Node[C]) String() string {
	return fmt.Sprintf("Node(%v cost:%g)", n.Config, n.PathCost)
}

// Tree is an arena of nodes addressed by NodeID. Children store the index of
// their parent, so the whole tree is one slice with no pointer cycles.
// A Tree lives for one search run and is Reset before the next.
//
// Only admitted nodes are stored: the root and every child an expansion
// strategy passes on to the frontier. Children that GraphSearch drops as
// duplicates never reach the arena. Admitted nodes stay until Reset, since
// any of them may be an ancestor of the goal.
type Tree[C comparable] struct {
	nodes []Node[C]
}

// Len returns the number of nodes created since the last Reset.
func (t *Tree[C]) Len() int { return len(t.nodes) }

// Reset forgets every node, keeping the allocated capacity.
func (t *Tree[C]) Reset() {
	clear(t.nodes)
	t.nodes = t.nodes[:0]
}

// Root creates a root node holding cfg.
func (t *Tree[C]) Root(cfg C) Node[C] {
	n := Node[C]{
		ID:     NodeID(len(t.nodes)),
		Parent: NoParent,
		Config: cfg,
	}
	t.nodes = append(t.nodes, n)

	return n
}

// Child creates and admits a node for cfg generated from parent by op at
// stepCost.
func (t *Tree[C]) Child(parent Node[C], cfg C, op Operator, stepCost float64) Node[C] {
	return t.Admit(Derive(parent, cfg, op, stepCost))
}

// Admit stores n and returns it with its new ID.
func (t *Tree[C]) Admit(n Node[C]) Node[C] {
	n.ID = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)

	return n
}

// Derive returns an Unplaced node for cfg generated from parent by op at
// stepCost. Nothing is stored until the node is admitted.
func Derive[C comparable](parent Node[C], cfg C, op Operator, stepCost float64) Node[C] {
	return Node[C]{
		ID:       Unplaced,
		Parent:   parent.ID,
		Config:   cfg,
		Op:       op,
		PathCost: parent.PathCost + stepCost,
		Depth:    parent.Depth + 1,
	}
}

// Node returns the node with the given id.
func (t *Tree[C]) Node(id NodeID) (Node[C], bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node[C]{}, false
	}

	return t.nodes[id], true
}

// PathFromRoot returns the nodes from the root down to n, inclusive.
func (t *Tree[C]) PathFromRoot(n Node[C]) []Node[C] {
	path := make([]Node[C], 0, n.Depth+1)
	for cur := n; ; {
		path = append(path, cur)
		if cur.IsRoot() {
			break
		}
		cur = t.nodes[cur.Parent]
	}
	// reverse to get root → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// OperatorsFromPath returns the operators that generated path[1:].
// A single-node path means the root itself passed the goal test and
// yields [NoOp]. An empty path yields an empty slice.
func OperatorsFromPath[C comparable](path []Node[C]) []Operator {
	switch len(path) {
	case 0:
		return []Operator{}
	case 1:
		return []Operator{NoOp()}
	}
	ops := make([]Operator, 0, len(path)-1)
	for _, n := range path[1:] {
		ops = append(ops, n.Op)
	}

	return ops
}
