package search

import (
	"errors"

	otelmetric "go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/katalvlaran/turnpath/search"

// instruments groups the counters recorded by the engine.
type instruments struct {
	expanded     otelmetric.Int64Counter
	pruned       otelmetric.Int64Counter
	deadEnds     otelmetric.Int64Counter
	improvements otelmetric.Int64Counter
}

func newInstruments(mp otelmetric.MeterProvider) (*instruments, error) {
	m := mp.Meter(instrumentationName)

	var ins instruments
	var err, e error
	ins.expanded, e = m.Int64Counter("turnpath.search.expanded",
		otelmetric.WithDescription("Tasks taken from the work queue and expanded."),
		otelmetric.WithUnit("{task}"))
	err = errors.Join(err, e)
	ins.pruned, e = m.Int64Counter("turnpath.search.pruned",
		otelmetric.WithDescription("Partial paths discarded because they reach the incumbent length."),
		otelmetric.WithUnit("{task}"))
	err = errors.Join(err, e)
	ins.deadEnds, e = m.Int64Counter("turnpath.search.dead_ends",
		otelmetric.WithDescription("Partial paths without any free admissible successor."),
		otelmetric.WithUnit("{task}"))
	err = errors.Join(err, e)
	ins.improvements, e = m.Int64Counter("turnpath.search.improvements",
		otelmetric.WithDescription("Accepted incumbent updates."),
		otelmetric.WithUnit("{path}"))
	err = errors.Join(err, e)

	return &ins, err
}
