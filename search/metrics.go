package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Standard metric names recorded by the search engine.
const (
	MetricExpandedNodes = "Expanded nodes"
	MetricQueueSize     = "Queue size"
	MetricMaxQueueSize  = "Max. queue size"
	MetricPathCost      = "Path cost"
)

// Kind tells whether a metric value is an integer or a real number.
type Kind uint8

const (
	KindInt Kind = iota
	KindReal
)

// Value is a typed metric value.
type Value struct {
	Kind Kind
	Int  int
	Real float64
}

// Float returns the value as a float64 whatever its kind.
func (v Value) Float() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}

	return v.Real
}

// String formats integers plainly and reals with one decimal.
func (v Value) String() string {
	if v.Kind == KindInt {
		return strconv.Itoa(v.Int)
	}

	return strconv.FormatFloat(v.Real, 'f', 1, 64)
}

// Metrics is a named store of search counters. Names keep their first
// insertion order so String and Names are stable.
//
// The zero value is ready to use. Metrics is not safe for concurrent use.
type Metrics struct {
	values map[string]Value
	names  []string
}

// NewMetrics returns an empty store.
func NewMetrics() *Metrics {
	return &Metrics{values: make(map[string]Value)}
}

// SetInt stores an integer value under name.
func (m *Metrics) SetInt(name string, v int) {
	m.set(name, Value{Kind: KindInt, Int: v})
}

// SetReal stores a real value under name.
func (m *Metrics) SetReal(name string, v float64) {
	m.set(name, Value{Kind: KindReal, Real: v})
}

// Lookup returns the value stored under name.
func (m *Metrics) Lookup(name string) (Value, bool) {
	v, ok := m.values[name]

	return v, ok
}

// Int returns the value under name as an int (reals are truncated),
// or 0 if absent.
func (m *Metrics) Int(name string) int {
	v, ok := m.values[name]
	if !ok {
		return 0
	}
	if v.Kind == KindReal {
		return int(v.Real)
	}

	return v.Int
}

// Real returns the value under name as a float64, or 0 if absent.
func (m *Metrics) Real(name string) float64 {
	return m.values[name].Float()
}

// Names returns the metric names in insertion order.
func (m *Metrics) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Len returns the number of stored metrics.
func (m *Metrics) Len() int { return len(m.names) }

// Clone returns an independent copy.
func (m *Metrics) Clone() *Metrics {
	c := &Metrics{
		values: make(map[string]Value, len(m.values)),
		names:  make([]string, len(m.names)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	copy(c.names, m.names)

	return c
}

// ExpandedNodes returns the "Expanded nodes" counter.
func (m *Metrics) ExpandedNodes() int { return m.Int(MetricExpandedNodes) }

// QueueSize returns the last recorded frontier size.
func (m *Metrics) QueueSize() int { return m.Int(MetricQueueSize) }

// MaxQueueSize returns the frontier size high-water mark.
func (m *Metrics) MaxQueueSize() int { return m.Int(MetricMaxQueueSize) }

// PathCost returns the cost of the returned solution (0 on failure).
func (m *Metrics) PathCost() float64 { return m.Real(MetricPathCost) }

// String renders "name: value" pairs separated by three spaces.
func (m *Metrics) String() string {
	parts := make([]string, 0, len(m.names))
	for _, name := range m.names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, m.values[name]))
	}

	return strings.Join(parts, "   ")
}

func (m *Metrics) set(name string, v Value) {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}
