// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w; model errors pass through wrapped.
//   • Constructors never panic; option constructors (WithX) do.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) below the
// constructor's minimum, or an Enclosure over an empty model.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a physically meaningless edge parameter:
// a non-positive or non-finite resistance, a negative or non-finite
// radiation coefficient, or a non-finite heater power.
var ErrInvalidParameter = errors.New("builder: invalid edge parameter")

// ErrNeedRandSource indicates WithTemperatureJitter was used without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a model rejection
// (duplicate node name, unknown target) while building.
var ErrConstructFailed = errors.New("builder: construction failed")
