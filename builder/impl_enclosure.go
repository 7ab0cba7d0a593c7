// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_enclosure.go - Enclosure(k): every node radiates to a fixed ambient.
//
// Contract:
//   • The model must already hold at least one node (else ErrTooFewNodes).
//   • k ≥ 0 and finite (else ErrInvalidParameter).
//   • Adds "Ambient" at cfg.temperature (no jitter) with infinite capacity,
//     then one Radiation edge node→Ambient per pre-existing node, in NodeID order.
//
// Complexity: O(N) edges for N existing nodes.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thermonet/model"
)

const (
	methodEnclosure = "Enclosure"

	// AmbientNodeID is the fixed name of the Enclosure boundary node.
	AmbientNodeID = "Ambient"
)

// Enclosure returns a Constructor that surrounds the current model with a
// radiating boundary at constant temperature.
func Enclosure(k float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if !(k >= 0) || math.IsInf(k, 1) {
			return fmt.Errorf("%s: coefficient=%g must be finite and ≥ 0: %w", methodEnclosure, k, ErrInvalidParameter)
		}
		n := m.NodeCount()
		if err := checkMin(methodEnclosure, "existing nodes", n, 1); err != nil {
			return err
		}

		ambient, err := m.DefineNode(AmbientNodeID, cfg.temperature, math.Inf(1))
		if err != nil {
			return fmt.Errorf("%s: %w: %w", methodEnclosure, ErrConstructFailed, err)
		}

		for i := 0; i < n; i++ {
			if err := m.DefineRadiation(model.NodeID(i), ambient, cfg.paramFn(cfg.rng, k)); err != nil {
				return fmt.Errorf("%s: %w: %w", methodEnclosure, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
