package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/telemetry"
)

// version is set at build time via -ldflags.
var version = "dev"

const metricsNamespace = "slide"

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel    string
	trace       bool
	metricsFile string
}

// app is the per-invocation state built from the root flags.
type app struct {
	flags    rootFlags
	logger   *slog.Logger
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
	observer *telemetry.Observer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "slide",
		Short: "Solve sliding-tile puzzles with uninformed search",
		Long: "slide solves rows×cols sliding-tile puzzles with breadth-first or\n" +
			"depth-first graph search and reports the search metrics.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.BoolVar(&a.flags.trace, "trace", false, "Print OpenTelemetry spans to stderr")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	root.AddCommand(newSolveCmd(a), newBatchCmd(a))

	return root
}

// setup builds the logger, metrics registry, tracer and observer.
func (a *app) setup(cmd *cobra.Command) error {
	level, err := config.ParseLevel(a.flags.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	a.registry = prometheus.NewRegistry()
	collector := telemetry.NewCollector(a.registry, metricsNamespace)

	var tracer *telemetry.Tracer
	if a.flags.trace {
		a.tp, err = telemetry.NewStdoutProvider(cmd.ErrOrStderr(), "slide")
		if err != nil {
			return err
		}
		tracer = telemetry.NewTracer(a.tp)
	}
	a.observer = telemetry.NewObserver(collector, tracer, a.logger)

	return nil
}

// finish flushes spans and writes the metrics file.
func (a *app) finish(ctx context.Context) error {
	if a.tp != nil {
		if err := a.tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("flush traces: %w", err)
		}
	}
	if a.flags.metricsFile != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(a.flags.metricsFile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Debug("metrics written", "path", a.flags.metricsFile)
	}

	return nil
}

// run wraps a command body with setup and finish.
func (a *app) run(cmd *cobra.Command, body func(ctx context.Context) error) (err error) {
	if err := a.setup(cmd); err != nil {
		return err
	}
	defer func() {
		if ferr := a.finish(context.WithoutCancel(cmd.Context())); ferr != nil && err == nil {
			err = ferr
		}
	}()

	return body(cmd.Context())
}
