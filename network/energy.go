// SPDX-License-Identifier: MIT

package network

import "gonum.org/v1/gonum/floats"

// Energy returns Σ capacity[i]·temperatures[i], the thermal energy stored in
// the network relative to 0 K. Transfer and Radiation edges leave it
// unchanged; each HeatInput edge adds Q·dt per step.
//
// It returns ErrDimensionMismatch (wrapped) if the snapshot does not fit.
// Complexity: O(N).
func (n *Network) Energy(temperatures []float64) (float64, error) {
	if err := n.ValidateSnapshot(temperatures); err != nil {
		return 0, err
	}

	return floats.Dot(n.capacities, temperatures), nil
}

// TotalCapacity returns Σ capacity[i].
func (n *Network) TotalCapacity() float64 {
	return floats.Sum(n.capacities)
}
