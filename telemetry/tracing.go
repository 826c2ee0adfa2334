package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statespace/search"
)

// InstrumentationName names the tracer used for search spans.
const InstrumentationName = "github.com/katalvlaran/statespace"

// Tracer starts and finishes search spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer backed by tp, or by the global provider if tp is nil.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Tracer{tracer: tp.Tracer(InstrumentationName)}
}

// Start opens a "search.Run" span for one run.
func (t *Tracer) Start(ctx context.Context, run Run) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "search.Run",
		trace.WithAttributes(
			attribute.String("search.run_id", run.ID),
			attribute.String("search.strategy", run.Strategy),
			attribute.String("search.subject", run.Subject),
		),
	)
}

// End records the run result on span and ends it.
func (t *Tracer) End(span trace.Span, ops []search.Operator, m *search.Metrics, err error) {
	defer span.End()

	outcome := Classify(ops, err)
	span.SetAttributes(
		attribute.String("search.outcome", string(outcome)),
		attribute.Int("search.solution_length", len(ops)),
	)
	if m != nil {
		span.SetAttributes(
			attribute.Int("search.expanded_nodes", m.ExpandedNodes()),
			attribute.Int("search.max_queue_size", m.MaxQueueSize()),
			attribute.Float64("search.path_cost", m.PathCost()),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return
	}
	span.SetStatus(codes.Ok, string(outcome))
}

// NewStdoutProvider returns a TracerProvider that batches spans to w as
// pretty-printed JSON. Callers must Shutdown it to flush.
func NewStdoutProvider(w io.Writer, service string) (*sdktrace.TracerProvider, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}
	res := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(service))

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}
