// SPDX-License-Identifier: MIT

package simulate

import "math"

// DivergenceThreshold is the largest |Δ| a single contribution may carry.
const DivergenceThreshold = 1e8

// CheckContribution returns a *DivergenceError if |c.Delta| exceeds the
// threshold, nil otherwise. A NaN delta fails the comparison and passes.
// step is 1-based, edge is the edge index.
func CheckContribution(step, edge int, c Contribution) error {
	if math.Abs(c.Delta) > DivergenceThreshold {
		return &DivergenceError{Step: step, Edge: edge, Node: c.Node, Delta: c.Delta}
	}

	return nil
}
