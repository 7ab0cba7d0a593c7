// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> name. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("rod") → "rod0","rod1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTemperature sets the initial temperature (K) of generated nodes.
// Panics on NaN or ±Inf.
func WithTemperature(T float64) BuilderOption {
	if math.IsNaN(T) || math.IsInf(T, 0) {
		panic("builder: WithTemperature requires a finite value")
	}
	return func(c *builderConfig) {
		c.temperature = T
	}
}

// WithCapacity sets the heat capacity (J/K) of generated nodes.
// Panics unless C > 0; +Inf is allowed for boundary nodes.
func WithCapacity(C float64) BuilderOption {
	if !(C > 0) {
		panic("builder: WithCapacity requires C > 0")
	}
	return func(c *builderConfig) {
		c.capacity = C
	}
}

// WithTemperatureJitter adds uniform noise in [-width, +width] to every
// generated node's temperature. Requires WithSeed or WithRand at build time.
// Panics if width is negative or not finite.
func WithTemperatureJitter(width float64) BuilderOption {
	if !(width >= 0) || math.IsInf(width, 1) {
		panic("builder: WithTemperatureJitter requires a finite width ≥ 0")
	}
	return func(c *builderConfig) {
		c.jitter = width
	}
}

// WithParameterFn overrides the edge parameter policy. Panics on nil.
func WithParameterFn(fn ParameterFn) BuilderOption {
	if fn == nil {
		panic("builder: WithParameterFn(nil)")
	}
	return func(c *builderConfig) {
		c.paramFn = fn
	}
}
