// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_heater.go - Heater(target, Q): constant power into a named node.
//
// Contract:
//   • target must already exist (else ErrConstructFailed wrapping
//     model.ErrUnknownNode); Q must be finite (negative Q is a cooler).
//   • Adds "Heater:<target>" with cfg's temperature and capacity, then one
//     HeatInput edge heater→target. The heater node itself never changes.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thermonet/model"
)

const (
	methodHeater = "Heater"
	heaterPrefix = "Heater:"
)

// HeaterNodeID returns the node name Heater uses for target.
func HeaterNodeID(target string) string { return heaterPrefix + target }

// Heater returns a Constructor that injects Q watts into target.
func Heater(target string, Q float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if math.IsNaN(Q) || math.IsInf(Q, 0) {
			return fmt.Errorf("%s: power=%g must be finite: %w", methodHeater, Q, ErrInvalidParameter)
		}
		dst, err := m.NodeByName(target)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", methodHeater, ErrConstructFailed, err)
		}

		src, err := addNode(m, cfg, methodHeater, HeaterNodeID(target))
		if err != nil {
			return err
		}
		if err := m.DefineHeatInput(src, dst, cfg.paramFn(cfg.rng, Q)); err != nil {
			return fmt.Errorf("%s: %w: %w", methodHeater, ErrConstructFailed, err)
		}

		return nil
	}
}
