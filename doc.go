// Package statespace is a domain-agnostic state-space search engine with a
// sliding-tile puzzle solver built on it.
//
// Packages
//
//	frontier/          FIFO, LIFO and priority queues with arbitrary removal
//	search/            problems, nodes, metrics, the queue-search loop,
//	                   graph and tree expansion, breadth- and depth-first search
//	puzzle/            sliding-tile boards as a search domain, and a solver
//	telemetry/         Prometheus and OpenTelemetry export of search runs
//	internal/config/   YAML batch files for the CLI
//	cmd/slide/         command-line solver
//
// Quick start
//
//	solver, _ := puzzle.NewSolver(3, 3)
//	board, _ := puzzle.FromTiles(3, 3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
//	ops, _ := solver.Solve(board, puzzle.BFS)
//	fmt.Println(ops, solver.Metrics()) // [Right] Expanded nodes: 1 ...
//
// Any problem whose configurations are comparable values can be searched:
// describe it with search.NewProblem (or a search.Domain) and run
// search.NewBreadthFirst, search.NewDepthFirst, or search.NewQueueSearch
// with the frontier of your choice.
package statespace
