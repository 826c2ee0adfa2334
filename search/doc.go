// Package search is a domain-agnostic state-space search engine: give it an
// initial configuration, the operators applicable to a configuration, a
// transition model, a goal test and a step cost, and it returns the ordered
// operators that lead from the initial configuration to a goal.
//
// What
//
//   - Problem[C] bundles the initial configuration and the four functions.
//     C is any comparable type; configurations are values, never mutated.
//   - QueueSearch[C] runs the frontier-driven loop. The frontier discipline is
//     picked per call (frontier.FIFO, frontier.LIFO, frontier.Priority), the
//     goal-test timing and the expansion strategy once at construction.
//   - GraphSearch[C] never expands a configuration twice (explored set plus a
//     cache of the configurations waiting in the frontier).
//     TreeSearch[C] adds every child and keeps no state.
//   - BreadthFirst and DepthFirst are ready-made strategies.
//   - Metrics records "Expanded nodes", "Queue size", "Max. queue size" and
//     "Path cost" for every run.
//
// Results
//
//	A solution is a non-empty []Operator. When the initial configuration is
//	already a goal the result is [NoOp()]. When every reachable configuration
//	has been exhausted without reaching a goal the result is an empty slice
//	and a nil error: "no solution" is an outcome, not a failure.
//
// Goal-test timing
//
//   - AfterDequeue:  a node is tested when it leaves the frontier (DFS, and
//     any cost-ordered strategy that must not stop on the first path found).
//   - BeforeEnqueue: a node is tested when generated, saving one frontier
//     round-trip per level (BFS with unit costs).
//
// Determinism
//
//	Given the same problem, strategy and frontier, two runs return the same
//	operators and the same metrics: children are generated in the order the
//	actions function returns operators, and priority ties leave the frontier
//	in insertion order.
//
// Complexity (b = branching factor, d = solution depth, m = max depth)
//
//   - BreadthFirst: time and memory O(b^d).
//   - DepthFirst:   time O(b^m), memory O(b·m) with TreeSearch, O(b^m) with
//     GraphSearch because of the explored set.
//
// Usage
//
//	p, err := search.NewProblem(start, actions, result, isGoal)
//	if err != nil {
//		// ErrNilActions, ErrNilResult, ErrNilGoal, ErrOptionViolation
//	}
//	bfs, _ := search.NewBreadthFirst[State](nil, search.WithLogger[State](logger))
//	ops, err := bfs.Search(p)
//	fmt.Println(ops, bfs.Metrics())
//
// Options
//
//   - WithLogger(l):     slog debug records per expansion and per enqueue.
//   - WithOnEnqueue(fn): hook after a node is added to the frontier.
//   - WithOnExpand(fn):  hook right before a node is expanded.
//   - WithOnGoal(fn):    hook with the goal node of a successful search.
//   - WithStepCost(fn):  (Problem) replace the unit step cost.
//
// Errors
//
//   - ErrNilProblem, ErrNilFrontier, ErrNilExpansion  missing collaborators.
//   - ErrFrontierNotEmpty   Search was handed a frontier that still holds nodes.
//   - ErrTransition         the transition model rejected an applicable operator.
//   - ErrNegativeStepCost   the step cost function returned < 0 or NaN.
//   - ErrOptionViolation    an invalid option or goal-test timing.
//   - frontier.ErrEmpty     (wrapped) the frontier broke its Len contract.
//
// Concurrency
//
//	A QueueSearch and the strategies built on it hold per-run state and are
//	not safe for concurrent use. Run one instance per goroutine; sequential
//	reuse is safe because all state is reset at the start of each Search.
package search
