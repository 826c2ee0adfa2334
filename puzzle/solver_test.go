package puzzle_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func board(t *testing.T, rows, cols int, tiles ...int) puzzle.Board {
	t.Helper()
	b, err := puzzle.FromTiles(rows, cols, tiles)
	require.NoError(t, err)

	return b
}

// One move from the goal: BFS returns that move; DFS reaches the goal too.
func TestSolver_OneMoveFromGoal(t *testing.T) {
	s, err := puzzle.NewSolver(3, 3)
	require.NoError(t, err)
	initial := board(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8)

	ops, err := s.Solve(initial, puzzle.BFS)
	require.NoError(t, err)
	assert.Equal(t, []search.Operator{puzzle.Right}, ops)
	assert.Equal(t, 1, s.Metrics().ExpandedNodes())
	assert.Equal(t, 1.0, s.Metrics().PathCost())
	end, err := puzzle.Apply(initial, ops)
	require.NoError(t, err)
	assert.True(t, end.IsSolved())

	ops, err = s.Solve(initial, puzzle.DFS)
	require.NoError(t, err)
	require.NotEmpty(t, ops)
	end, err = puzzle.Apply(initial, ops)
	require.NoError(t, err)
	assert.True(t, end.IsSolved())
	assert.Equal(t, float64(len(ops)), s.Metrics().PathCost())
}

func TestSolver_TrivialBoard(t *testing.T) {
	s, err := puzzle.NewSolver(1, 1)
	require.NoError(t, err)
	b, err := puzzle.NewBoard(1, 1)
	require.NoError(t, err)

	for _, strategy := range []puzzle.Strategy{puzzle.BFS, puzzle.DFS} {
		ops, err := s.Solve(b, strategy)
		require.NoError(t, err)
		assert.Equal(t, []search.Operator{search.NoOp()}, ops, strategy.String())
		assert.Zero(t, s.Metrics().ExpandedNodes(), strategy.String())
	}
}

func TestSolver_ShortestSolution(t *testing.T) {
	s, err := puzzle.NewSolver(2, 2)
	require.NoError(t, err)
	// three gap moves away: Left, Up, Right undo to solved
	solved, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)
	initial, err := puzzle.Apply(solved, []search.Operator{puzzle.Left, puzzle.Up, puzzle.Right})
	require.NoError(t, err)

	ops, err := s.Solve(initial, puzzle.BFS)
	require.NoError(t, err)
	assert.Len(t, ops, 3)
	end, err := puzzle.Apply(initial, ops)
	require.NoError(t, err)
	assert.True(t, end.IsSolved())
}

// Swapping two tiles flips permutation parity: the goal is unreachable and
// the search exhausts the 12 reachable 2×2 boards.
func TestSolver_Unsolvable(t *testing.T) {
	s, err := puzzle.NewSolver(2, 2)
	require.NoError(t, err)
	initial := board(t, 2, 2, 2, 1, 3, 0)

	for _, strategy := range []puzzle.Strategy{puzzle.BFS, puzzle.DFS} {
		ops, err := s.Solve(initial, strategy)
		require.NoError(t, err)
		assert.NotNil(t, ops)
		assert.Empty(t, ops)
		assert.Equal(t, 12, s.Metrics().ExpandedNodes(), strategy.String())
		assert.Zero(t, s.Metrics().PathCost())
	}
}

func TestSolver_Errors(t *testing.T) {
	_, err := puzzle.NewSolver(0, 3)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDimension)

	s, err := puzzle.NewSolver(2, 2)
	require.NoError(t, err)
	_, err = s.Solve(board(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 0), puzzle.BFS)
	assert.ErrorIs(t, err, puzzle.ErrDimensionMismatch)
	_, err = s.Solve(board(t, 2, 2, 1, 2, 3, 0), puzzle.Strategy(5))
	assert.ErrorIs(t, err, puzzle.ErrUnknownStrategy)
}

func TestSolver_OperatedPosition(t *testing.T) {
	s, err := puzzle.NewSolver(3, 3)
	require.NoError(t, err)
	b := board(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8) // gap at (2, 1)

	p, err := s.OperatedPosition(b, puzzle.Right)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Position{Row: 2, Col: 2}, p)
	p, err = s.OperatedPosition(b, puzzle.Up)
	require.NoError(t, err)
	assert.Equal(t, "(1, 1)", p.String())

	_, err = s.OperatedPosition(b, puzzle.Down)
	assert.ErrorIs(t, err, puzzle.ErrIllegalMove)
	_, err = s.OperatedPosition(b, search.NoOp())
	assert.ErrorIs(t, err, puzzle.ErrUnknownOperator)
}

func TestSolver_OptionsAndMetricsSnapshot(t *testing.T) {
	var buf bytes.Buffer
	var expanded []puzzle.Board
	s, err := puzzle.NewSolver(2, 2,
		puzzle.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		puzzle.WithOnExpand(func(b puzzle.Board) { expanded = append(expanded, b) }))
	require.NoError(t, err)
	assert.Zero(t, s.Metrics().ExpandedNodes(), "no solve yet")

	initial := board(t, 2, 2, 1, 2, 0, 3)
	_, err = s.Solve(initial, puzzle.BFS)
	require.NoError(t, err)
	require.NotEmpty(t, expanded)
	assert.Equal(t, initial, expanded[0])
	assert.Contains(t, buf.String(), "puzzle solved")

	m := s.Metrics()
	m.SetInt(search.MetricExpandedNodes, 1000)
	assert.NotEqual(t, 1000, s.Metrics().ExpandedNodes())
}

func TestApply_IllegalStep(t *testing.T) {
	b, err := puzzle.NewBoard(2, 2)
	require.NoError(t, err)
	_, err = puzzle.Apply(b, []search.Operator{search.NoOp(), puzzle.Up, puzzle.Up})
	assert.ErrorIs(t, err, puzzle.ErrIllegalMove)
}
