// SPDX-License-Identifier: MIT

package thermonet

import (
	"github.com/katalvlaran/thermonet/network"
	"github.com/katalvlaran/thermonet/simulate"
)

// Simulate validates raw caller arrays, builds the network and advances the
// temperatures by steps explicit-Euler steps of length dt.
//
// Inputs (N nodes, E edges):
//   - temperatures, capacities: length N; capacities > 0.
//   - parameters, connections, edgeTypes: length E; endpoints in [0, N);
//     edgeTypes in {0 Transfer, 1 Radiation, 2 HeatInput}.
//
// Errors:
//   - network.ErrInvalidInput (with the specific rule) before any step runs.
//   - simulate.ErrDivergedSimulation (*simulate.DivergenceError) when a single
//     contribution exceeds simulate.DivergenceThreshold.
//
// On error the returned slice is nil; the input slices are never modified.
func Simulate(temperatures, capacities, parameters []float64, connections [][2]uint,
	edgeTypes []int32, dt float64, steps int32, opts ...simulate.Option) ([]float64, error) {
	// Temperatures and capacities describe the same nodes; check that first so
	// the error names the node arrays rather than a snapshot.
	if len(temperatures) != len(capacities) {
		return nil, invalidNodeArrays(len(temperatures), len(capacities))
	}

	net, err := network.New(capacities, parameters, connections, edgeTypes)
	if err != nil {
		return nil, err
	}

	return simulate.Simulate(net, temperatures, dt, int(steps), opts...)
}
