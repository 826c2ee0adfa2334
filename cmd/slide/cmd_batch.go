package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/puzzle"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/telemetry"
)

type batchFlags struct {
	file     string
	parallel int
}

// batchResult is the outcome of one configured puzzle.
type batchResult struct {
	name     string
	strategy puzzle.Strategy
	ops      []search.Operator
	metrics  *search.Metrics
	err      error
}

func newBatchCmd(a *app) *cobra.Command {
	var flags batchFlags
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every puzzle of a YAML file, several at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.file)
			if err != nil {
				return err
			}
			applyConfig(cmd, a, cfg, &flags)

			return a.run(cmd, func(ctx context.Context) error {
				return runBatch(ctx, a, cmd.OutOrStdout(), cfg, flags.parallel)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "Path to the batch YAML file (required)")
	f.IntVar(&flags.parallel, "parallel", 0, "Puzzles solved at once (default from file)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// applyConfig fills every flag the user did not set from the file.
func applyConfig(cmd *cobra.Command, a *app, cfg *config.Config, flags *batchFlags) {
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		a.flags.logLevel = cfg.LogLevel
	}
	if !cmd.Flags().Changed("trace") {
		a.flags.trace = cfg.Trace
	}
	if !cmd.Flags().Changed("metrics-file") && cfg.MetricsFile != "" {
		a.flags.metricsFile = cfg.MetricsFile
	}
	if flags.parallel <= 0 {
		flags.parallel = cfg.Parallel
	}
}

func runBatch(ctx context.Context, a *app, out io.Writer, cfg *config.Config, parallel int) error {
	batchID := uuid.NewString()
	a.logger.Info("batch started", "batch_id", batchID, "puzzles", len(cfg.Puzzles), "parallel", parallel)

	results := make([]batchResult, len(cfg.Puzzles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, p := range cfg.Puzzles {
		g.Go(func() error {
			results[i] = solveConfigured(gCtx, a, cfg, p)
			return nil
		})
	}
	_ = g.Wait() // errors are kept per result

	failed := 0
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTRATEGY\tRESULT\tMOVES\tEXPANDED\tMAX QUEUE")
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t%v\terror: %v\t-\t-\t-\n", r.name, r.strategy, r.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\t%d\t%d\t%d\n", r.name, r.strategy,
			telemetry.Classify(r.ops, nil), len(r.ops), r.metrics.ExpandedNodes(), r.metrics.MaxQueueSize())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.logger.Info("batch finished", "batch_id", batchID, "failed", failed)

	if failed > 0 {
		return fmt.Errorf("batch: %d of %d puzzles failed", failed, len(results))
	}

	return nil
}

// solveConfigured solves one puzzle with a solver of its own.
func solveConfigured(ctx context.Context, a *app, cfg *config.Config, p config.Puzzle) batchResult {
	res := batchResult{name: p.Name}
	strategy, err := cfg.StrategyFor(p)
	if err != nil {
		res.err = err
		return res
	}
	res.strategy = strategy
	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}
	board, err := p.Board()
	if err != nil {
		res.err = err
		return res
	}
	solver, err := puzzle.NewSolver(p.Rows, p.Columns, puzzle.WithLogger(a.logger.With("puzzle", p.Name)))
	if err != nil {
		res.err = err
		return res
	}

	run := telemetry.Run{ID: uuid.NewString(), Strategy: strategy.String(), Subject: p.Name}
	res.ops, res.metrics, res.err = a.observer.Observe(ctx, run,
		func(context.Context) ([]search.Operator, *search.Metrics, error) {
			ops, err := solver.Solve(board, strategy)
			return ops, solver.Metrics(), err
		})

	return res
}
