// SPDX-License-Identifier: MIT

package simulate

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/metrics"
)

// StepObserver receives a copy of the snapshot after every completed step.
// step is 1-based. Observers run on the simulating goroutine.
type StepObserver func(step int, snapshot []float64)

// Options configures a Simulator. Use DefaultOptions and the WithX
// constructors; the zero value is not ready for use.
type Options struct {
	// Workers is the number of goroutines evaluating edges (≥ 1).
	Workers int
	// Logger receives run-level events. Never nil after DefaultOptions.
	Logger *zap.Logger
	// Metrics, when non-nil, records run outcomes.
	Metrics *metrics.Collector
	// Ctx is checked between steps; cancellation fails the run.
	Ctx context.Context
	// Observer, when non-nil, is called after every completed step.
	Observer StepObserver
}

// DefaultOptions returns sequential evaluation, a no-op logger, no metrics,
// a background context and no observer.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  zap.NewNop(),
		Ctx:     context.Background(),
	}
}

// Option mutates Options. Constructors panic on nonsensical arguments
// (programmer error); Simulate itself never panics on user input.
type Option func(*Options)

// WithWorkers sets the number of evaluation goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("simulate: WithWorkers(n<1)")
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithMetrics records run outcomes on c. A nil collector disables metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) { o.Metrics = c }
}

// WithContext makes the run check ctx between steps. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("simulate: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithObserver installs a per-step observer. Panics on nil.
func WithObserver(fn StepObserver) Option {
	if fn == nil {
		panic("simulate: WithObserver(nil)")
	}

	return func(o *Options) { o.Observer = fn }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
