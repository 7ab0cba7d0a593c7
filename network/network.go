// SPDX-License-Identifier: MIT

package network

// New validates raw parallel arrays and returns an immutable Network.
//
// Inputs:
//   - capacities:  one entry per node, each > 0.
//   - parameters:  one entry per edge; meaning depends on the edge kind.
//   - connections: one (node1, node2) pair per edge.
//   - edgeTypes:   one kind code per edge (0 Transfer, 1 Radiation, 2 HeatInput).
//
// Errors (all match ErrInvalidInput): ErrDimensionMismatch,
// ErrNonPositiveCapacity, ErrUnknownEdgeKind, ErrNodeIndexOutOfRange.
//
// The inputs are copied; later changes by the caller do not affect the Network.
// Complexity: O(N + E).
func New(capacities, parameters []float64, connections [][2]uint, edgeTypes []int32) (*Network, error) {
	// 1) Shape: the three edge arrays must describe the same E.
	if len(parameters) != len(connections) || len(parameters) != len(edgeTypes) {
		return nil, invalidf(ErrDimensionMismatch,
			"parameters=%d connections=%d edge_types=%d", len(parameters), len(connections), len(edgeTypes))
	}

	// 2) Capacities before edges, so a bad node is reported regardless of edges.
	if err := validateCapacities(capacities); err != nil {
		return nil, err
	}

	// 3) Kinds for every edge, then endpoints, as documented in doc.go.
	for j, code := range edgeTypes {
		if !EdgeKind(code).Valid() {
			return nil, invalidf(ErrUnknownEdgeKind, "edge %d code=%d", j, code)
		}
	}
	nodes := uint(len(capacities))
	for j, c := range connections {
		if c[0] >= nodes {
			return nil, invalidf(ErrNodeIndexOutOfRange, "edge %d node1=%d (N=%d)", j, c[0], nodes)
		}
		if c[1] >= nodes {
			return nil, invalidf(ErrNodeIndexOutOfRange, "edge %d node2=%d (N=%d)", j, c[1], nodes)
		}
	}

	// 4) All checks passed: build the typed copy.
	edges := make([]Edge, len(parameters))
	for j := range edges {
		edges[j] = Edge{
			Kind:      EdgeKind(edgeTypes[j]),
			Parameter: parameters[j],
			N1:        int(connections[j][0]),
			N2:        int(connections[j][1]),
		}
	}

	return &Network{capacities: cloneFloats(capacities), edges: edges}, nil
}

// FromEdges validates typed edges against capacities and returns a Network.
// It applies the same rules as New, minus the array-shape check.
func FromEdges(capacities []float64, edges []Edge) (*Network, error) {
	if err := validateCapacities(capacities); err != nil {
		return nil, err
	}
	for j, e := range edges {
		if !e.Kind.Valid() {
			return nil, invalidf(ErrUnknownEdgeKind, "edge %d code=%d", j, int32(e.Kind))
		}
	}
	n := len(capacities)
	for j, e := range edges {
		if e.N1 < 0 || e.N1 >= n {
			return nil, invalidf(ErrNodeIndexOutOfRange, "edge %d node1=%d (N=%d)", j, e.N1, n)
		}
		if e.N2 < 0 || e.N2 >= n {
			return nil, invalidf(ErrNodeIndexOutOfRange, "edge %d node2=%d (N=%d)", j, e.N2, n)
		}
	}

	out := make([]Edge, len(edges))
	copy(out, edges)

	return &Network{capacities: cloneFloats(capacities), edges: out}, nil
}

// ValidateSnapshot checks that a temperature vector fits this network.
func (n *Network) ValidateSnapshot(temperatures []float64) error {
	if n == nil {
		return invalidf(ErrNilNetwork, "ValidateSnapshot")
	}
	if len(temperatures) != len(n.capacities) {
		return invalidf(ErrDimensionMismatch, "temperatures=%d capacities=%d", len(temperatures), len(n.capacities))
	}

	return nil
}

// validateCapacities enforces capacity > 0. NaN fails the comparison and is
// therefore rejected too. +Inf is accepted: such a node never changes
// temperature and acts as a fixed boundary.
func validateCapacities(capacities []float64) error {
	for i, c := range capacities {
		if !(c > 0) {
			return invalidf(ErrNonPositiveCapacity, "node %d capacity=%g", i, c)
		}
	}

	return nil
}

func cloneFloats(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}
