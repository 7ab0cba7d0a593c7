// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: Build(mopts, bopts, cons...). Creates m, resolves cfg,
//     runs cons in order, then calls m.Setup().
//   • Apply runs constructors against an existing model without Setup, so
//     hand-written definitions and generated ones can be mixed.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical models.
//   • Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermonet/model"
)

// Constructor applies a deterministic mutation to m using the resolved
// builderConfig. Constructors validate their parameters before defining
// anything; a model rejection halfway through (a duplicate name) can leave
// m partially extended, which Build discards.
type Constructor func(m *model.Model, cfg builderConfig) error

// Build creates a model with mopts, applies all constructors in order with
// the configuration resolved from bopts, and returns the model after Setup.
// Any constructor error is wrapped with "Build: %w".
//
// Complexity: Σ cost of each constructor + O(N+E) for Setup.
func Build(mopts []model.Option, bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	m := model.New(mopts...)

	if err := Apply(m, bopts, cons...); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := m.Setup(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// Apply runs constructors against an existing model. Setup is left to the
// caller.
func Apply(m *model.Model, bopts []BuilderOption, cons ...Constructor) error {
	if m == nil {
		return fmt.Errorf("Apply: nil model: %w", ErrConstructFailed)
	}

	// Resolve configuration once; every constructor sees the same cfg
	// (and the same RNG stream, in order).
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("temperature jitter=%g: %w", cfg.jitter, ErrNeedRandSource)
	}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return err
		}
	}

	return nil
}
