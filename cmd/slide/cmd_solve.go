package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/telemetry"
)

type solveFlags struct {
	rows     int
	cols     int
	tiles    string
	strategy string
	steps    bool
}

func newSolveCmd(a *app) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one puzzle given as row-major tiles (0 is the gap)",
		Example: "  slide solve --tiles 1,2,3,4,5,6,7,0,8\n" +
			"  slide solve --rows 2 --cols 3 --tiles 1,2,3,4,0,5 --strategy dfs --steps",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context) error {
				return runSolve(ctx, a, cmd.OutOrStdout(), flags)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.rows, "rows", 3, "Number of rows")
	f.IntVar(&flags.cols, "cols", 3, "Number of columns")
	f.StringVar(&flags.tiles, "tiles", "", "Comma-separated tiles in row-major order (required)")
	f.StringVar(&flags.strategy, "strategy", "bfs", "Search strategy: bfs or dfs")
	f.BoolVar(&flags.steps, "steps", false, "Print every move with the tile it slides")
	_ = cmd.MarkFlagRequired("tiles")

	return cmd
}

func runSolve(ctx context.Context, a *app, out io.Writer, flags solveFlags) error {
	tiles, err := parseTiles(flags.tiles)
	if err != nil {
		return err
	}
	initial, err := puzzle.FromTiles(flags.rows, flags.cols, tiles)
	if err != nil {
		return err
	}
	strategy, err := puzzle.ParseStrategy(flags.strategy)
	if err != nil {
		return err
	}
	solver, err := puzzle.NewSolver(flags.rows, flags.cols, puzzle.WithLogger(a.logger))
	if err != nil {
		return err
	}

	run := telemetry.Run{ID: uuid.NewString(), Strategy: strategy.String(), Subject: initial.String()}
	ops, m, err := a.observer.Observe(ctx, run, func(context.Context) ([]search.Operator, *search.Metrics, error) {
		ops, err := solver.Solve(initial, strategy)
		return ops, solver.Metrics(), err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Initial:  %v\n", initial)
	fmt.Fprintf(out, "Strategy: %v\n", strategy)
	fmt.Fprintf(out, "Solution: %s\n", describe(ops))
	fmt.Fprintf(out, "Metrics:  %v\n", m)
	if flags.steps {
		if err := printSteps(out, solver, initial, ops); err != nil {
			return err
		}
	}
	if len(ops) > 0 {
		end, err := puzzle.Apply(initial, ops)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Final:    %v solved=%t\n", end, end.IsSolved())
	}

	return nil
}

// parseTiles reads "1,2,3" (spaces allowed) into ints.
func parseTiles(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	tiles := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse tiles %q: %w", s, err)
		}
		tiles = append(tiles, v)
	}

	return tiles, nil
}

// describe renders a plan for humans.
func describe(ops []search.Operator) string {
	switch telemetry.Classify(ops, nil) {
	case telemetry.OutcomeNoSolution:
		return "no solution"
	case telemetry.OutcomeTrivial:
		return "already solved"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name()
	}

	return fmt.Sprintf("%s (%d moves)", strings.Join(names, " "), len(ops))
}

// printSteps replays ops, naming the tile each move slides into the gap.
func printSteps(out io.Writer, solver *puzzle.Solver, b puzzle.Board, ops []search.Operator) error {
	for i, op := range ops {
		if op.IsNoOp() {
			continue
		}
		from, err := solver.OperatedPosition(b, op)
		if err != nil {
			return err
		}
		tile, err := b.Value(from)
		if err != nil {
			return err
		}
		if b, err = b.Move(op); err != nil {
			return err
		}
		fmt.Fprintf(out, "  %3d. %-5s tile %d from %v\n", i+1, op.Name(), tile, from)
	}

	return nil
}
