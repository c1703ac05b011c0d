package search

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/turnpath/internal/logging"
)

// NoIterationLimit disables the iteration budget.
const NoIterationLimit int64 = -1

// Options configures Solve and Run.
//
// Workers          – number of worker goroutines (≥ 1). Default runtime.NumCPU().
// MaxIterations    – cap on expansions across all workers; NoIterationLimit (default)
//
//	means unlimited and 0 means that nothing is expanded.
//
// TimeLimit        – wall-clock cap; 0 (default) means unlimited.
// Label            – name handed to the Publisher; defaults to the run id.
// Publisher        – receives every accepted improvement and the final result.
// Logger           – structured logger; default discards.
// MeterProvider    – OpenTelemetry meters; default otel.GetMeterProvider().
// ProgressInterval – period of OnProgress callbacks; 0 disables them.
type Options struct {
	Workers          int
	MaxIterations    int64
	TimeLimit        time.Duration
	Label            string
	Publisher        Publisher
	Logger           *slog.Logger
	MeterProvider    otelmetric.MeterProvider
	ProgressInterval time.Duration
	OnProgress       func(Progress)
}

// Option is a functional option for Solve and Run.
type Option func(*Options)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxIterations caps the number of expansions. Use NoIterationLimit to lift the cap.
func WithMaxIterations(n int64) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTimeLimit caps the wall-clock duration of the run.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithLabel names the run for the Publisher.
func WithLabel(label string) Option {
	return func(o *Options) { o.Label = label }
}

// WithPublisher installs the improvement sink.
func WithPublisher(p Publisher) Option {
	return func(o *Options) { o.Publisher = p }
}

// WithLogger installs a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp otelmetric.MeterProvider) Option {
	return func(o *Options) { o.MeterProvider = mp }
}

// WithProgress calls fn every interval while the run is in progress.
func WithProgress(interval time.Duration, fn func(Progress)) Option {
	return func(o *Options) {
		o.ProgressInterval = interval
		o.OnProgress = fn
	}
}

// DefaultOptions returns the defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Workers:       runtime.NumCPU(),
		MaxIterations: NoIterationLimit,
		Logger:        logging.Discard(),
		MeterProvider: otel.GetMeterProvider(),
	}
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}

	return o, validateOptions(o)
}

// validateOptions rejects values with no defined meaning.
func validateOptions(o Options) error {
	if o.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", o.Workers, ErrInvalidOptions)
	}
	if o.MaxIterations < NoIterationLimit {
		return fmt.Errorf("max iterations=%d: %w", o.MaxIterations, ErrInvalidOptions)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("time limit=%s: %w", o.TimeLimit, ErrInvalidOptions)
	}
	if o.ProgressInterval < 0 {
		return fmt.Errorf("progress interval=%s: %w", o.ProgressInterval, ErrInvalidOptions)
	}

	return nil
}
