package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

func TestExpander_ChildrenAndCounter(t *testing.T) {
	var tree search.Tree[string]
	m := search.NewMetrics()
	m.SetInt(search.MetricExpandedNodes, 99)
	x := search.NewExpander(&tree, m)
	assert.Zero(t, m.ExpandedNodes(), "a new expander starts at zero")

	p := diamond().problem(t, "S", "G")
	root := tree.Root("S")
	children, err := x.Expand(root, p)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "A", children[0].Config)
	assert.Equal(t, "B", children[1].Config)
	assert.Equal(t, 5.0, children[1].PathCost)
	assert.Equal(t, root.ID, children[1].Parent)
	assert.Equal(t, 1, m.ExpandedNodes(), "one per call, not per child")
	assert.Equal(t, search.Unplaced, children[0].ID)
	assert.Equal(t, 1, tree.Len(), "children are not stored until admitted")

	a := x.Admit(children[0])
	assert.Equal(t, search.NodeID(1), a.ID)
	assert.Equal(t, 2, tree.Len())

	leaf, err := x.Expand(a, p)
	require.NoError(t, err)
	_, err = x.Expand(leaf[0], p) // G has no operators
	require.NoError(t, err)
	assert.Equal(t, 3, m.ExpandedNodes())

	x.ClearMetrics()
	assert.Zero(t, m.ExpandedNodes())
}

func TestExpander_Errors(t *testing.T) {
	boom := errors.New("boom")
	op := search.MustOperator("go")
	actions := func(int) []search.Operator { return []search.Operator{op} }
	isGoal := func(int) bool { return false }

	t.Run("transition", func(t *testing.T) {
		p, err := search.NewProblem(0, actions, func(int, search.Operator) (int, error) { return 0, boom }, isGoal)
		require.NoError(t, err)
		var tree search.Tree[int]
		_, err = search.NewExpander(&tree, search.NewMetrics()).Expand(tree.Root(0), p)
		assert.ErrorIs(t, err, search.ErrTransition)
		assert.ErrorIs(t, err, boom)
	})

	for name, cost := range map[string]float64{"negative": -1, "nan": math.NaN()} {
		t.Run(name, func(t *testing.T) {
			p, err := search.NewProblem(0, actions,
				func(c int, _ search.Operator) (int, error) { return c + 1, nil }, isGoal,
				search.WithStepCost(func(int, search.Operator, int) float64 { return cost }))
			require.NoError(t, err)
			var tree search.Tree[int]
			_, err = search.NewExpander(&tree, search.NewMetrics()).Expand(tree.Root(0), p)
			assert.ErrorIs(t, err, search.ErrNegativeStepCost)
		})
	}
}
