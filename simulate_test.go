// SPDX-License-Identifier: MIT

package thermonet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermonet"
	"github.com/katalvlaran/thermonet/network"
	"github.com/katalvlaran/thermonet/simulate"
)

func TestSimulate_ConcreteScenario(t *testing.T) {
	out, err := thermonet.Simulate(
		[]float64{100, 0}, []float64{1, 1},
		[]float64{1}, [][2]uint{{0, 1}}, []int32{0},
		0.1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 10}, out)
}

func TestSimulate_NodeArrayMismatch(t *testing.T) {
	_, err := thermonet.Simulate([]float64{1, 2}, []float64{1}, nil, nil, nil, 0.1, 1)
	assert.ErrorIs(t, err, network.ErrInvalidInput)
	assert.ErrorIs(t, err, network.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "temperatures=2 capacities=1")
}

func TestSimulate_ValidationBeforeAnyStep(t *testing.T) {
	// The first edge is fine, the second points past the last node, and the
	// third would diverge: validation must win.
	temps := []float64{1, 2}
	out, err := thermonet.Simulate(temps, []float64{1, 1},
		[]float64{1, 1, 1e20}, [][2]uint{{0, 1}, {0, 2}, {0, 1}}, []int32{0, 0, 2},
		1, 5)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, network.ErrNodeIndexOutOfRange)
	assert.NotErrorIs(t, err, simulate.ErrDivergedSimulation)
	assert.Equal(t, []float64{1, 2}, temps)
}

func TestSimulate_Divergence(t *testing.T) {
	_, err := thermonet.Simulate([]float64{0, 0}, []float64{1, 1},
		[]float64{1e9}, [][2]uint{{1, 0}}, []int32{2}, 1, 1)
	var div *simulate.DivergenceError
	require.ErrorAs(t, err, &div)
	assert.Equal(t, 0, div.Node)
	assert.Equal(t, 0, div.Edge)
}

func TestSimulate_PassesOptions(t *testing.T) {
	var seen int
	_, err := thermonet.Simulate([]float64{1, 0}, []float64{1, 1},
		[]float64{1}, [][2]uint{{0, 1}}, []int32{0}, 0.1, 3,
		simulate.WithObserver(func(int, []float64) { seen++ }))
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
}

func TestSimulate_NoStepsReturnsInput(t *testing.T) {
	temps := []float64{100, 0}
	for _, tc := range []struct {
		dt    float64
		steps int32
	}{{math.NaN(), 0}, {0.1, -3}} {
		out, err := thermonet.Simulate(temps, []float64{1, 1},
			[]float64{1}, [][2]uint{{0, 1}}, []int32{0}, tc.dt, tc.steps)
		require.NoError(t, err, "dt=%g steps=%d", tc.dt, tc.steps)
		assert.Equal(t, temps, out)
	}
}
