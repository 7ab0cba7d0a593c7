// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_chain.go - Chain(n, R): a rod discretised into n lumped segments.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); R > 0 and finite (else ErrInvalidParameter).
//   • Nodes cfg.idFn(0..n-1) in index order.
//   • Transfer edges i→i+1 in ascending i, parameter cfg.paramFn(R).
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "github.com/katalvlaran/thermonet/model"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a linear conduction chain.
func Chain(n int, R float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := checkMin(methodChain, "n", n, minChainNodes); err != nil {
			return err
		}
		if err := checkResistance(methodChain, R); err != nil {
			return err
		}

		// 2) Nodes in index order, linking each to its predecessor.
		var prev model.NodeID
		for i := 0; i < n; i++ {
			id, err := addNode(m, cfg, methodChain, cfg.idFn(i))
			if err != nil {
				return err
			}
			if i > 0 {
				if err := conduct(m, cfg, methodChain, prev, id, R); err != nil {
					return err
				}
			}
			prev = id
		}

		return nil
	}
}
