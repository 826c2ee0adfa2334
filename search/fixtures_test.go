package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

// arc is a labelled, weighted edge of a test graph.
type arc struct {
	to   string
	cost float64
}

// graph is an explicit search space: each vertex maps to its outgoing arcs in
// the order they are offered as operators. The operator for an arc is named
// "from->to".
type graph map[string][]arc

func opName(from, to string) string { return from + "->" + to }

func (g graph) Actions(cfg string) []search.Operator {
	ops := make([]search.Operator, 0, len(g[cfg]))
	for _, a := range g[cfg] {
		ops = append(ops, search.MustOperator(opName(cfg, a.to)))
	}

	return ops
}

func (g graph) Result(cfg string, op search.Operator) (string, error) {
	for _, a := range g[cfg] {
		if op.Name() == opName(cfg, a.to) {
			return a.to, nil
		}
	}

	return "", fmt.Errorf("no arc %s", op)
}

func (g graph) StepCost(from string, op search.Operator, to string) float64 {
	for _, a := range g[from] {
		if a.to == to {
			return a.cost
		}
	}

	return 0
}

// problem builds a Problem over g that succeeds at goal.
func (g graph) problem(t testing.TB, start, goal string) *search.Problem[string] {
	t.Helper()
	p, err := search.FromDomain[string](start, goalDomain{graph: g, goal: goal})
	require.NoError(t, err)

	return p
}

type goalDomain struct {
	graph
	goal string
}

func (d goalDomain) IsGoal(cfg string) bool { return cfg == d.goal }

// diamond has a cheap-first-hop path S->A->G (cost 11) and a
// cheap-overall path S->B->G (cost 6).
func diamond() graph {
	return graph{
		"S": {{to: "A", cost: 1}, {to: "B", cost: 5}},
		"A": {{to: "G", cost: 10}},
		"B": {{to: "G", cost: 1}},
	}
}

// cycle never reaches Z.
func cycle() graph {
	return graph{
		"S": {{to: "A", cost: 1}},
		"A": {{to: "S", cost: 1}},
	}
}

// cell is a lattice coordinate used for reconverging-path tests.
type cell struct{ X, Y int }

var (
	right = search.MustOperator("Right")
	up    = search.MustOperator("Up")
)

// lattice returns a problem on an n×n grid where every cell can move right
// or up, so most cells are reachable by many paths. goal may be nil, in
// which case nothing is a goal.
func lattice(t testing.TB, n int, goal *cell) *search.Problem[cell] {
	t.Helper()
	actions := func(c cell) []search.Operator {
		var ops []search.Operator
		if c.X < n-1 {
			ops = append(ops, right)
		}
		if c.Y < n-1 {
			ops = append(ops, up)
		}

		return ops
	}
	result := func(c cell, op search.Operator) (cell, error) {
		switch op {
		case right:
			return cell{c.X + 1, c.Y}, nil
		case up:
			return cell{c.X, c.Y + 1}, nil
		}

		return c, fmt.Errorf("unknown operator %s", op)
	}
	isGoal := func(c cell) bool { return goal != nil && c == *goal }

	p, err := search.NewProblem(cell{}, actions, result, isGoal)
	require.NoError(t, err)

	return p
}

// names renders operators by name for compact assertions.
func names(ops []search.Operator) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.Name()
	}

	return out
}

// replay applies ops from the problem's initial configuration, checking each
// operator is applicable, and returns the final configuration and path cost.
func replay[C comparable](t testing.TB, p *search.Problem[C], ops []search.Operator) (C, float64) {
	t.Helper()
	cur, total := p.Initial(), 0.0
	for _, op := range ops {
		if op.IsNoOp() {
			continue
		}
		require.Contains(t, p.Actions(cur), op, "operator %s not applicable to %v", op, cur)
		next, err := p.Result(cur, op)
		require.NoError(t, err)
		total += p.StepCost(cur, op, next)
		cur = next
	}

	return cur, total
}
