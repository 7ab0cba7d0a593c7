// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_ring.go - Ring(n, R): a closed loop, e.g. a pipe or a flange.
//
// Contract:
//   • n ≥ 3; R > 0 and finite.
//   • Nodes cfg.idFn(0..n-1); Transfer edges i→(i+1) mod n in ascending i.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "github.com/katalvlaran/thermonet/model"

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that builds a conduction cycle.
func Ring(n int, R float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		if err := checkMin(methodRing, "n", n, minRingNodes); err != nil {
			return err
		}
		if err := checkResistance(methodRing, R); err != nil {
			return err
		}

		ids := make([]model.NodeID, n)
		for i := range ids {
			id, err := addNode(m, cfg, methodRing, cfg.idFn(i))
			if err != nil {
				return err
			}
			ids[i] = id
		}
		for i := range ids {
			if err := conduct(m, cfg, methodRing, ids[i], ids[(i+1)%n], R); err != nil {
				return err
			}
		}

		return nil
	}
}
