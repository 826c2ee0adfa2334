// Package telemetry exports search runs to Prometheus and OpenTelemetry.
//
// Collector keeps per-strategy gauges of the last run (expanded nodes, max
// queue size, path cost), a counter of runs by outcome, a counter of all
// expanded nodes and a duration histogram. Tracer wraps one search run in a
// span carrying the same numbers as attributes. Observer combines both around
// a solve function and logs one record per run.
//
// The search engine itself has no telemetry dependency; everything here reads
// the search.Metrics a run leaves behind.
package telemetry
