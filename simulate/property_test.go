// SPDX-License-Identifier: MIT

package simulate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermonet/network"
	"github.com/katalvlaran/thermonet/simulate"
)

// relTol bounds the rounding left by dividing and re-multiplying by a capacity.
const relTol = 1e-12

// TestPhysicsInvariants checks the per-edge energy bookkeeping for arbitrary
// temperatures, capacities and parameters.
func TestPhysicsInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Transfer and Radiation: C[a]ΔT[a] + C[b]ΔT[b] = 0 whatever the capacities.
	for _, kind := range []network.EdgeKind{network.Transfer, network.Radiation} {
		kind := kind
		properties.Property(kind.String()+" edge conserves energy", prop.ForAll(
			func(ta, tb, ca, cb, p, dt float64) bool {
				got, err := simulate.Evaluate(
					network.Edge{Kind: kind, Parameter: p, N1: 0, N2: 1},
					dt, []float64{ta, tb}, []float64{ca, cb})
				if err != nil || len(got) != 2 {
					return false
				}
				ea, eb := ca*got[0].Delta, cb*got[1].Delta

				return math.Abs(ea+eb) <= relTol*math.Abs(ea)
			},
			gen.Float64Range(0, 2000),
			gen.Float64Range(0, 2000),
			gen.Float64Range(1e-3, 1e6),
			gen.Float64Range(1e-3, 1e6),
			gen.Float64Range(1e-12, 1e3),
			gen.Float64Range(1e-4, 10),
		))
	}

	// HeatInput: C[n2]ΔT[n2] = Q·dt whatever C[n2].
	properties.Property("heat input injects Q·dt", prop.ForAll(
		func(c, q, dt float64) bool {
			got, err := simulate.Evaluate(
				network.Edge{Kind: network.HeatInput, Parameter: q, N1: 0, N2: 1},
				dt, []float64{0, 0}, []float64{1, c})
			if err != nil || len(got) != 1 || got[0].Node != 1 {
				return false
			}

			return math.Abs(c*got[0].Delta-q*dt) <= relTol*math.Abs(q*dt)
		},
		gen.Float64Range(1e-3, 1e6),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(1e-4, 10),
	))

	properties.TestingRun(t)
}

// TestRunInvariants checks whole-run properties on a small mixed network.
func TestRunInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	// 0 ─T─ 1 ─R─ 2 ─T─ 3 ─T─ 4, heater on 4.
	net, err := network.New(
		[]float64{10, 20, 5, 40, 15},
		[]float64{2, 1e-10, 4, 1, 3},
		[][2]uint{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {0, 4}},
		[]int32{0, 1, 0, 0, 2},
	)
	if err != nil {
		t.Fatalf("network: %v", err)
	}
	temps := gen.SliceOfN(5, gen.Float64Range(0, 800))

	properties.Property("zero steps returns the input bit-identical", prop.ForAll(
		func(in []float64) bool {
			out, err := simulate.Simulate(net, in, 0.1, 0)
			if err != nil {
				return false
			}
			for i := range in {
				if math.Float64bits(in[i]) != math.Float64bits(out[i]) {
					return false
				}
			}

			return true
		},
		temps,
	))

	properties.Property("k steps equals k chained single steps", prop.ForAll(
		func(in []float64, k int) bool {
			whole, err := simulate.Simulate(net, in, 0.1, k)
			if err != nil {
				return false
			}
			chained := in
			for i := 0; i < k; i++ {
				if chained, err = simulate.Simulate(net, chained, 0.1, 1); err != nil {
					return false
				}
			}

			return floats.EqualApprox(whole, chained, 1e-9)
		},
		temps,
		gen.IntRange(1, 25),
	))

	properties.Property("energy grows by exactly the injected heat", prop.ForAll(
		func(in []float64, k int) bool {
			out, err := simulate.Simulate(net, in, 0.1, k)
			if err != nil {
				return false
			}
			before, _ := net.Energy(in)
			after, _ := net.Energy(out)
			injected := 3 * 0.1 * float64(k)

			return math.Abs(after-before-injected) <= 1e-7*math.Max(1, math.Abs(before))
		},
		temps,
		gen.IntRange(1, 25),
	))

	properties.TestingRun(t)
}

// TestGuardIndependentOfPosition places one runaway edge at every position of
// an otherwise benign edge list.
func TestGuardIndependentOfPosition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("the runaway edge is always the one reported", prop.ForAll(
		func(e, pos, workers int) bool {
			pos %= e
			params := make([]float64, e)
			conns := make([][2]uint, e)
			kinds := make([]int32, e)
			for j := range params {
				params[j] = 1
				conns[j] = [2]uint{uint(j % 3), uint((j + 1) % 3)}
			}
			params[pos] = 1e20
			kinds[pos] = int32(network.HeatInput)

			net, err := network.New([]float64{1, 1, 1}, params, conns, kinds)
			if err != nil {
				return false
			}
			_, err = simulate.Simulate(net, []float64{1, 2, 3}, 1, 1, simulate.WithWorkers(workers))
			var div *simulate.DivergenceError
			if !errors.As(err, &div) {
				return false
			}

			return div.Edge == pos && div.Node == int(conns[pos][1])
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 1000),
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}
