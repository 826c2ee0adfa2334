package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
)

func TestNewBoard_Solved(t *testing.T) {
	b, err := puzzle.NewBoard(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, b.Tiles())
	assert.Equal(t, "Puzzle{1,2,3,4,5,6,7,8,0}", b.String())
	assert.Equal(t, puzzle.Position{Row: 2, Col: 2}, b.Gap())
	assert.True(t, b.IsSolved())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())

	one, err := puzzle.NewBoard(1, 1)
	require.NoError(t, err)
	assert.True(t, one.IsSolved())
	assert.Empty(t, one.Moves())
}

func TestNewBoard_InvalidDimension(t *testing.T) {
	for _, dim := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {17, 16}, {1 << 62, 4}, {1 << 32, 1 << 32}} {
		_, err := puzzle.NewBoard(dim[0], dim[1])
		assert.ErrorIs(t, err, puzzle.ErrInvalidDimension, "%dx%d", dim[0], dim[1])
	}
	_, err := puzzle.NewBoard(16, 16)
	assert.NoError(t, err)
}

func TestNewSolver_OverflowingDimension(t *testing.T) {
	_, err := puzzle.NewSolver(1<<32, 1<<32)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDimension)
	_, err = puzzle.NewRules(1<<62, 4)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDimension)
	_, err = puzzle.FromTiles(1<<62, 4, nil)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDimension)
}

func TestFromTiles_Validation(t *testing.T) {
	_, err := puzzle.FromTiles(2, 2, []int{1, 2, 3})
	assert.ErrorIs(t, err, puzzle.ErrInvalidTiles)
	_, err = puzzle.FromTiles(2, 2, []int{1, 1, 3, 0})
	assert.ErrorIs(t, err, puzzle.ErrInvalidTiles)
	_, err = puzzle.FromTiles(2, 2, []int{1, 2, 4, 0})
	assert.ErrorIs(t, err, puzzle.ErrInvalidTiles)
	_, err = puzzle.FromTiles(0, 2, nil)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDimension)

	b, err := puzzle.FromTiles(2, 2, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.False(t, b.IsSolved())
	assert.Equal(t, puzzle.Position{}, b.Gap())
}

func TestBoard_Value(t *testing.T) {
	b, err := puzzle.FromTiles(2, 3, []int{4, 1, 2, 5, 0, 3})
	require.NoError(t, err)

	v, err := b.Value(puzzle.Position{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = b.Value(puzzle.Position{Row: 2, Col: 0})
	assert.ErrorIs(t, err, puzzle.ErrOutOfBounds)
	_, err = b.Value(puzzle.Position{Row: 0, Col: -1})
	assert.ErrorIs(t, err, puzzle.ErrOutOfBounds)
}

func TestBoard_Moves(t *testing.T) {
	corner, err := puzzle.NewBoard(3, 3) // gap bottom-right
	require.NoError(t, err)
	assert.Equal(t, []search.Operator{puzzle.Up, puzzle.Left}, corner.Moves())

	center, err := puzzle.FromTiles(3, 3, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, []search.Operator{puzzle.Up, puzzle.Down, puzzle.Left, puzzle.Right}, center.Moves())

	up, err := center.Move(puzzle.Up)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 4, 2, 5, 6, 7, 8}, up.Tiles())
	assert.Equal(t, []int{1, 2, 3, 4, 0, 5, 6, 7, 8}, center.Tiles(), "Move does not modify the receiver")

	back, err := up.Move(puzzle.Down)
	require.NoError(t, err)
	assert.Equal(t, center, back, "boards are comparable values")

	_, err = corner.Move(puzzle.Right)
	assert.ErrorIs(t, err, puzzle.ErrIllegalMove)
	_, err = corner.Move(search.MustOperator("Jump"))
	assert.ErrorIs(t, err, puzzle.ErrUnknownOperator)
	assert.False(t, corner.CanMove(search.NoOp()))

	var zero puzzle.Board
	assert.Empty(t, zero.Moves())
	assert.False(t, zero.IsSolved())
	assert.Equal(t, "Puzzle{}", zero.String())
}

func TestParseStrategy(t *testing.T) {
	s, err := puzzle.ParseStrategy("BFS")
	require.NoError(t, err)
	assert.Equal(t, puzzle.BFS, s)
	s, err = puzzle.ParseStrategy(" dfs ")
	require.NoError(t, err)
	assert.Equal(t, puzzle.DFS, s)
	assert.Equal(t, "dfs", s.String())

	_, err = puzzle.ParseStrategy("astar")
	assert.ErrorIs(t, err, puzzle.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", puzzle.Strategy(9).String())
}
