// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"
)

// EdgeKind selects the physics rule of an edge. The numeric codes are part of
// the external array interface and must not be renumbered.
type EdgeKind int32

const (
	// Transfer is conductive exchange; parameter is the thermal resistance R.
	Transfer EdgeKind = iota
	// Radiation is radiative exchange; parameter is the ε·F·σ·A coefficient.
	Radiation
	// HeatInput injects power Q into node2. node1 only names the source and
	// never receives a contribution, so this kind is not energy-conserving.
	HeatInput
)

// edgeKindNames maps codes to their canonical lowercase names.
var edgeKindNames = [...]string{
	Transfer:  "transfer",
	Radiation: "radiation",
	HeatInput: "heat_input",
}

// Valid reports whether k is one of the defined codes.
func (k EdgeKind) Valid() bool {
	return k >= Transfer && k <= HeatInput
}

// String returns the canonical name, or "EdgeKind(n)" for unknown codes.
func (k EdgeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("EdgeKind(%d)", int32(k))
	}

	return edgeKindNames[k]
}

// ParseEdgeKind maps a name to its kind. Matching is case-insensitive and
// accepts "-" or " " for "_" (so "heat-input" works).
func ParseEdgeKind(s string) (EdgeKind, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for k, name := range edgeKindNames {
		if name == norm {
			return EdgeKind(k), nil
		}
	}

	return 0, invalidf(ErrUnknownEdgeKind, "%q", s)
}

// Edge is one physics link between two nodes.
type Edge struct {
	Kind      EdgeKind
	Parameter float64
	N1, N2    int
}

// Network is the validated, read-only topology of a thermal network.
// It is safe for concurrent readers; nothing mutates it after construction.
type Network struct {
	capacities []float64
	edges      []Edge
}

// NodeCount returns N.
func (n *Network) NodeCount() int { return len(n.capacities) }

// EdgeCount returns E.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Capacity returns the heat capacity of node i. It panics on an out-of-range
// index like any slice access; use NodeCount to bound loops.
func (n *Network) Capacity(i int) float64 { return n.capacities[i] }

// Capacities returns a copy of the capacity vector.
func (n *Network) Capacities() []float64 {
	out := make([]float64, len(n.capacities))
	copy(out, n.capacities)

	return out
}

// Edge returns edge j by value.
func (n *Network) Edge(j int) Edge { return n.edges[j] }

// Edges returns a copy of the edge list in its original order.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// View exposes the internal slices without copying. Callers MUST treat both
// as read-only; the simulator uses it to avoid per-run copies.
func (n *Network) View() (capacities []float64, edges []Edge) {
	return n.capacities, n.edges
}
