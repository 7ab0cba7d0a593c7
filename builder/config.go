// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (no randomness unless seeded)
//   • temperature = 293.15 K
//   • capacity    = 1000 J/K
//   • jitter      = 0                  (no temperature noise)
//   • paramFn     = DefaultParameterFn (edge parameters as given)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	// Initial state of every generated node.
	temperature float64
	capacity    float64
	// Half-width of the uniform noise added to temperature; needs rng.
	jitter float64

	// Edge parameter policy; receives the constructor's nominal value.
	paramFn ParameterFn
}

const (
	defaultTemperature = 293.15 // K, 20 °C
	defaultCapacity    = 1000.0 // J/K
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		temperature: defaultTemperature,
		capacity:    defaultCapacity,
		paramFn:     DefaultParameterFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nodeTemperature returns the initial temperature of the next generated
// node, drawing jitter from rng when configured.
func (c builderConfig) nodeTemperature() (float64, error) {
	if c.jitter == 0 {
		return c.temperature, nil
	}
	if c.rng == nil {
		return 0, ErrNeedRandSource
	}
	return c.temperature + (2*c.rng.Float64()-1)*c.jitter, nil
}
