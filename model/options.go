// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/simulate"
)

// DefaultTimeStep is the step length in seconds used when WithTimeStep is
// not given.
const DefaultTimeStep = 0.1

// Options configures a Model.
type Options struct {
	TimeStep   float64
	Logger     *zap.Logger
	SimOptions []simulate.Option
}

// DefaultOptions returns a 0.1 s step, a no-op logger and no simulator options.
func DefaultOptions() Options {
	return Options{TimeStep: DefaultTimeStep, Logger: zap.NewNop()}
}

// Option mutates Options.
type Option func(*Options)

// WithTimeStep sets dt in seconds. Panics unless dt is positive and finite.
func WithTimeStep(dt float64) Option {
	if !(dt > 0) || math.IsInf(dt, 1) {
		panic("model: WithTimeStep requires a positive finite dt")
	}
	return func(o *Options) { o.TimeStep = dt }
}

// WithLogger routes both model and simulator logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("model: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithSimulateOptions appends options passed to every simulation run.
func WithSimulateOptions(opts ...simulate.Option) Option {
	return func(o *Options) { o.SimOptions = append(o.SimOptions, opts...) }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
