// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thermonet/model"
)

// addNode defines one generated node with cfg's temperature policy.
func addNode(m *model.Model, cfg builderConfig, method, name string) (model.NodeID, error) {
	T, err := cfg.nodeTemperature()
	if err != nil {
		return 0, fmt.Errorf("%s: node %q: %w", method, name, err)
	}
	id, err := m.DefineNode(name, T, cfg.capacity)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	return id, nil
}

// conduct links a and b with cfg.paramFn(R).
func conduct(m *model.Model, cfg builderConfig, method string, a, b model.NodeID, R float64) error {
	if err := m.DefineConduction(a, b, cfg.paramFn(cfg.rng, R)); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}
	return nil
}

func checkResistance(method string, R float64) error {
	if !(R > 0) || math.IsInf(R, 1) {
		return fmt.Errorf("%s: resistance=%g must be positive and finite: %w", method, R, ErrInvalidParameter)
	}
	return nil
}

func checkMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewNodes)
	}
	return nil
}
