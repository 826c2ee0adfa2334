package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statespace/search"
)

// Run identifies one search run for spans and log records.
type Run struct {
	ID       string // unique per run, e.g. a UUID
	Strategy string // "bfs", "dfs", ...
	Subject  string // what was searched, e.g. a puzzle name or board
}

// SolveFunc performs one search and returns its plan and metrics.
type SolveFunc func(ctx context.Context) ([]search.Operator, *search.Metrics, error)

// Observer wraps search runs with a span, Prometheus samples and a log record.
// Any of its parts may be nil.
type Observer struct {
	collector *Collector
	tracer    *Tracer
	logger    *slog.Logger
}

// NewObserver combines the given sinks. A nil logger discards.
func NewObserver(c *Collector, t *Tracer, l *slog.Logger) *Observer {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	return &Observer{collector: c, tracer: t, logger: l}
}

// Observe runs solve inside a span and records its outcome everywhere.
// It returns whatever solve returned.
func (o *Observer) Observe(ctx context.Context, run Run, solve SolveFunc) ([]search.Operator, *search.Metrics, error) {
	var span trace.Span
	if o.tracer != nil {
		ctx, span = o.tracer.Start(ctx, run)
	}

	start := time.Now()
	ops, m, err := solve(ctx)
	elapsed := time.Since(start)
	outcome := Classify(ops, err)

	if span != nil {
		o.tracer.End(span, ops, m, err)
	}
	if o.collector != nil {
		o.collector.Observe(run.Strategy, m, outcome, elapsed)
	}

	attrs := []any{
		"run_id", run.ID,
		"strategy", run.Strategy,
		"subject", run.Subject,
		"outcome", string(outcome),
		"moves", len(ops),
		"elapsed", elapsed,
	}
	if m != nil {
		attrs = append(attrs, "metrics", m.String())
	}
	if err != nil {
		o.logger.ErrorContext(ctx, "search run failed", append(attrs, "error", err)...)
	} else {
		o.logger.InfoContext(ctx, "search run finished", attrs...)
	}

	return ops, m, err
}
