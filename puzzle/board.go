package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// Board is an immutable sliding-puzzle configuration: rows×cols tiles in
// row-major order, with Gap marking the empty cell. Boards are comparable
// values, so they can be used directly as search configurations and map keys.
//
// The zero Board has no cells and no moves.
type Board struct {
	rows, cols int
	cells      string // one byte per tile, row-major
}

// NewBoard returns the solved rows×cols board: 1..n-1 in row-major order,
// then the gap in the last cell.
func NewBoard(rows, cols int) (Board, error) {
	if err := checkDimension(rows, cols); err != nil {
		return Board{}, err
	}

	return Board{rows: rows, cols: cols, cells: solvedCells(rows * cols)}, nil
}

// FromTiles builds a board from row-major tile values. The values must be a
// permutation of 0..rows*cols-1.
func FromTiles(rows, cols int, tiles []int) (Board, error) {
	if err := checkDimension(rows, cols); err != nil {
		return Board{}, err
	}
	n := rows * cols
	if len(tiles) != n {
		return Board{}, fmt.Errorf("%w: got %d tiles for a %dx%d board", ErrInvalidTiles, len(tiles), rows, cols)
	}
	seen := make([]bool, n)
	cells := make([]byte, n)
	for i, v := range tiles {
		if v < 0 || v >= n || seen[v] {
			return Board{}, fmt.Errorf("%w: bad or repeated value %d at index %d", ErrInvalidTiles, v, i)
		}
		seen[v] = true
		cells[i] = byte(v)
	}

	return Board{rows: rows, cols: cols, cells: string(cells)}, nil
}

func checkDimension(rows, cols int) error {
	// each side is bounded first so the product cannot overflow
	if rows <= 0 || cols <= 0 || rows > MaxCells || cols > MaxCells || rows*cols > MaxCells {
		return fmt.Errorf("%w: %dx%d (1..%d cells)", ErrInvalidDimension, rows, cols, MaxCells)
	}

	return nil
}

// solvedCells returns the goal layout for n cells.
func solvedCells(n int) string {
	cells := make([]byte, n)
	for i := 0; i < n-1; i++ {
		cells[i] = byte(i + 1)
	}
	cells[n-1] = Gap

	return string(cells)
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// InBounds reports whether p lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Value returns the tile at p.
func (b Board) Value(p Position) (int, error) {
	if !b.InBounds(p) {
		return 0, fmt.Errorf("%w: %v on %dx%d", ErrOutOfBounds, p, b.rows, b.cols)
	}

	return int(b.cells[b.index(p)]), nil
}

// Gap returns the position of the empty cell. The zero Board reports (-1, -1).
func (b Board) Gap() Position {
	i := strings.IndexByte(b.cells, Gap)
	if i < 0 {
		return Position{-1, -1}
	}

	return b.position(i)
}

// Tiles returns the tile values in row-major order.
func (b Board) Tiles() []int {
	out := make([]int, len(b.cells))
	for i := range len(b.cells) {
		out[i] = int(b.cells[i])
	}

	return out
}

// IsSolved reports whether b is in goal order.
func (b Board) IsSolved() bool {
	return len(b.cells) > 0 && b.cells == solvedCells(len(b.cells))
}

// CanMove reports whether the gap can move in the direction of op.
func (b Board) CanMove(op search.Operator) bool {
	if len(b.cells) == 0 {
		return false
	}
	to, err := b.Gap().Toward(op)

	return err == nil && b.InBounds(to)
}

// Move returns the board with the gap swapped with its neighbour in the
// direction of op. b itself is unchanged.
func (b Board) Move(op search.Operator) (Board, error) {
	gap := b.Gap()
	to, err := gap.Toward(op)
	if err != nil {
		return b, err
	}
	if len(b.cells) == 0 || !b.InBounds(to) {
		return b, fmt.Errorf("%w: %s with gap at %v", ErrIllegalMove, op.Name(), gap)
	}
	cells := []byte(b.cells)
	gi, ti := b.index(gap), b.index(to)
	cells[gi], cells[ti] = cells[ti], cells[gi]

	return Board{rows: b.rows, cols: b.cols, cells: string(cells)}, nil
}

// Moves returns the legal gap moves, ordered Up, Down, Left, Right.
func (b Board) Moves() []search.Operator {
	ops := make([]search.Operator, 0, 4)
	for _, op := range []search.Operator{Up, Down, Left, Right} {
		if b.CanMove(op) {
			ops = append(ops, op)
		}
	}

	return ops
}

// String renders the tiles as "Puzzle{1,2,3,0}".
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("Puzzle{")
	for i := range len(b.cells) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(b.cells[i])))
	}
	sb.WriteByte('}')

	return sb.String()
}

// index converts a position to its row-major offset.
func (b Board) index(p Position) int { return p.Row*b.cols + p.Col }

// position converts a row-major offset to a position.
func (b Board) position(i int) Position { return Position{Row: i / b.cols, Col: i % b.cols} }
