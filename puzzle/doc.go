// Package puzzle models the sliding-tile puzzle (8-puzzle, 15-puzzle and any
// rows×cols variant) as a search domain and solves it with package search.
//
// What
//
//   - Board is an immutable, comparable configuration. 0 is the gap; the
//     solved board holds 1..n-1 in row-major order and the gap last.
//   - Up, Down, Left and Right move the gap, swapping it with a neighbour.
//   - Rules implements search.Domain[Board] for one board size.
//   - Solver runs breadth-first (shortest) or depth-first graph search and
//     keeps the metrics of the last solve.
//
// Half of all tile permutations cannot reach the solved board. Searching one
// of those exhausts the reachable half and returns an empty solution, which
// for a 3×3 board means 181440 expansions.
//
// Errors
//
//   - ErrInvalidDimension   rows or cols < 1, or more than MaxCells cells.
//   - ErrInvalidTiles       tiles are not a permutation of 0..n-1.
//   - ErrOutOfBounds        Value on a position outside the board.
//   - ErrIllegalMove        a gap move off the edge of the board.
//   - ErrUnknownOperator    an operator other than the four moves.
//   - ErrDimensionMismatch  a board of the wrong size for the solver.
//   - ErrUnknownStrategy    ParseStrategy on anything but "bfs" or "dfs".
package puzzle
