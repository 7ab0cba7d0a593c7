// SPDX-License-Identifier: MIT

package network

import "slices"

// Components groups nodes that can exchange heat through any chain of edges,
// ignoring edge direction and kind. Components are ordered by their smallest
// node index and each component lists its nodes in ascending order, so the
// result is deterministic.
//
// A component of size one shares no edge with another node. Its temperature
// can still change through a HeatInput edge that targets it from itself;
// Isolated excludes those.
//
// Time:   O(N + E).
// Memory: O(N + E) for the adjacency lists and output.
func (n *Network) Components() [][]int {
	nodes := len(n.capacities)
	adj := make([][]int, nodes)
	for _, e := range n.edges {
		if e.N1 == e.N2 {
			continue
		}
		adj[e.N1] = append(adj[e.N1], e.N2)
		adj[e.N2] = append(adj[e.N2], e.N1)
	}

	seen := make([]bool, nodes)
	var comps [][]int
	for start := 0; start < nodes; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Isolated returns the indices of nodes whose temperature can never change:
// they share no edge with any other node and no HeatInput edge targets them.
func (n *Network) Isolated() []int {
	heated := make([]bool, len(n.capacities))
	for _, e := range n.edges {
		if e.Kind == HeatInput {
			heated[e.N2] = true
		}
	}

	var out []int
	for _, comp := range n.Components() {
		if len(comp) == 1 && !heated[comp[0]] {
			out = append(out, comp[0])
		}
	}

	return out
}
