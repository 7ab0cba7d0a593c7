// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"

	"github.com/katalvlaran/thermonet/network"
)

// Contribution is one temperature delta produced by one edge for one node.
type Contribution struct {
	Node  int
	Delta float64
}

// Evaluate returns the contributions of edge e for a step of length dt,
// computed from snapshot and capacities only. It never writes its inputs.
//
// Transfer and Radiation yield two contributions (n1 first, then n2);
// HeatInput yields one, for n2. An unknown kind returns
// network.ErrUnknownEdgeKind; validated networks never reach that branch.
//
// Endpoint indices are not bounds-checked here beyond the usual slice
// panics: validation belongs to network.New.
func Evaluate(e network.Edge, dt float64, snapshot, capacities []float64) ([]Contribution, error) {
	return appendContributions(nil, e, dt, snapshot, capacities)
}

// appendContributions is the allocation-free form of Evaluate used by the
// accumulators: dst is usually a reused scratch slice with capacity 2.
func appendContributions(dst []Contribution, e network.Edge, dt float64, t, c []float64) ([]Contribution, error) {
	switch e.Kind {
	case network.Transfer:
		// parameter is the thermal resistance R.
		flow := (t[e.N2] - t[e.N1]) / e.Parameter * dt

		return append(dst,
			Contribution{Node: e.N1, Delta: flow / c[e.N1]},
			Contribution{Node: e.N2, Delta: -flow / c[e.N2]},
		), nil

	case network.Radiation:
		// parameter is ε·F·σ·A; T⁴ as (T²)² to keep one rounding path.
		t1, t2 := t[e.N1]*t[e.N1], t[e.N2]*t[e.N2]
		flow := (t2*t2 - t1*t1) * e.Parameter * dt

		return append(dst,
			Contribution{Node: e.N1, Delta: flow / c[e.N1]},
			Contribution{Node: e.N2, Delta: -flow / c[e.N2]},
		), nil

	case network.HeatInput:
		// parameter is the power Q. n1 is intentionally not consumed: the
		// source has no thermal mass and no compensating extraction happens.
		flow := e.Parameter * dt

		return append(dst, Contribution{Node: e.N2, Delta: flow / c[e.N2]}), nil

	default:
		return dst, fmt.Errorf("%w: %s", network.ErrUnknownEdgeKind, e.Kind)
	}
}
