// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_star.go - Star(n, R): a heat-sink base ("Center") with n-1 fins.
//
// Contract:
//   • n ≥ 2; R > 0 and finite.
//   • Hub "Center" first, then leaves cfg.idFn(1..n-1), each joined
//     Center→leaf right after it is defined.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "github.com/katalvlaran/thermonet/model"

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterNodeID is the fixed name of the Star hub.
	CenterNodeID = "Center"
)

// Star returns a Constructor that builds a hub-and-spoke network.
func Star(n int, R float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := checkMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := checkResistance(methodStar, R); err != nil {
			return err
		}

		hub, err := addNode(m, cfg, methodStar, CenterNodeID)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leaf, err := addNode(m, cfg, methodStar, cfg.idFn(i))
			if err != nil {
				return err
			}
			if err := conduct(m, cfg, methodStar, hub, leaf, R); err != nil {
				return err
			}
		}

		return nil
	}
}
