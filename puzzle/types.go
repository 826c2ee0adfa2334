package puzzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// Sentinel errors for puzzle construction and moves.
var (
	// ErrInvalidDimension indicates zero rows or columns, or more cells than MaxCells.
	ErrInvalidDimension = errors.New("puzzle: invalid board dimension")
	// ErrInvalidTiles indicates tiles that are not a permutation of 0..rows*cols-1.
	ErrInvalidTiles = errors.New("puzzle: tiles must be a permutation of 0..n-1")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("puzzle: position out of bounds")
	// ErrIllegalMove indicates a gap move off the edge of the board.
	ErrIllegalMove = errors.New("puzzle: illegal move")
	// ErrUnknownOperator indicates an operator that is not one of Up, Down, Left, Right.
	ErrUnknownOperator = errors.New("puzzle: unknown operator")
	// ErrDimensionMismatch indicates a board whose size differs from the solver's.
	ErrDimensionMismatch = errors.New("puzzle: board dimension mismatch")
	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("puzzle: unknown strategy")
)

// MaxCells bounds rows*cols so each tile fits in one byte of a Board.
const MaxCells = 256

// Gap is the tile value of the empty cell.
const Gap = 0

// The four gap moves, in the order they are offered to the search.
var (
	Up    = search.MustOperator("Up")
	Down  = search.MustOperator("Down")
	Left  = search.MustOperator("Left")
	Right = search.MustOperator("Right")
)

// Position is a (row, column) cell coordinate. Neighbours may fall outside a
// board; Board.InBounds tells.
type Position struct {
	Row, Col int
}

// Up returns the position one row above p.
func (p Position) Up() Position { return Position{p.Row - 1, p.Col} }

// Down returns the position one row below p.
func (p Position) Down() Position { return Position{p.Row + 1, p.Col} }

// Left returns the position one column left of p.
func (p Position) Left() Position { return Position{p.Row, p.Col - 1} }

// Right returns the position one column right of p.
func (p Position) Right() Position { return Position{p.Row, p.Col + 1} }

// Toward returns the neighbour of p in the direction of a move operator.
func (p Position) Toward(op search.Operator) (Position, error) {
	switch op {
	case Up:
		return p.Up(), nil
	case Down:
		return p.Down(), nil
	case Left:
		return p.Left(), nil
	case Right:
		return p.Right(), nil
	}

	return p, fmt.Errorf("%w: %q", ErrUnknownOperator, op.Name())
}

// String renders "(row, col)".
func (p Position) String() string { return fmt.Sprintf("(%d, %d)", p.Row, p.Col) }

// Strategy selects the uninformed search a Solver runs.
type Strategy int

const (
	// BFS is breadth-first graph search; it returns a shortest solution.
	BFS Strategy = iota
	// DFS is depth-first graph search; any solution, usually a long one.
	DFS
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bfs" or "dfs" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
