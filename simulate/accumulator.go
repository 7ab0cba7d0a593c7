// SPDX-License-Identifier: MIT

package simulate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermonet/network"
)

// Accumulator collects the per-node sum of all contributions of one step.
// Contributions to the same node add up; nothing is applied to a snapshot
// until ApplyTo is called. An Accumulator is owned by one goroutine.
type Accumulator struct {
	sums    []float64
	step    int
	scratch []Contribution
}

// NewAccumulator returns an empty accumulator for a network of n nodes.
func NewAccumulator(n int) *Accumulator {
	return &Accumulator{
		sums:    make([]float64, n),
		step:    1,
		scratch: make([]Contribution, 0, 2),
	}
}

// Reset clears all sums and tags later guard errors with step.
func (a *Accumulator) Reset(step int) {
	clear(a.sums)
	a.step = step
}

// Add guards c and, if it passes, adds it to its node's sum.
func (a *Accumulator) Add(edge int, c Contribution) error {
	if err := CheckContribution(a.step, edge, c); err != nil {
		return err
	}
	a.sums[c.Node] += c.Delta

	return nil
}

// AddEdges evaluates edges against snapshot and adds every contribution.
// first is the network index of edges[0], used in error reports. Evaluation
// stops at the first guard failure.
func (a *Accumulator) AddEdges(edges []network.Edge, first int, dt float64, snapshot, capacities []float64) error {
	var err error
	for j, e := range edges {
		a.scratch, err = appendContributions(a.scratch[:0], e, dt, snapshot, capacities)
		if err != nil {
			return err
		}
		for _, c := range a.scratch {
			if err = a.Add(first+j, c); err != nil {
				return err
			}
		}
	}

	return nil
}

// Merge adds the sums of other into a. Both must cover the same nodes.
func (a *Accumulator) Merge(other *Accumulator) {
	floats.Add(a.sums, other.sums)
}

// ApplyTo writes next[i] = current[i] + sum[i]. current is only read.
func (a *Accumulator) ApplyTo(current, next []float64) {
	floats.AddTo(next, current, a.sums)
}

// Sums returns a copy of the per-node sums.
func (a *Accumulator) Sums() []float64 {
	out := make([]float64, len(a.sums))
	copy(out, a.sums)

	return out
}
