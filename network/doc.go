// SPDX-License-Identifier: MIT

// Package network is the immutable, validated description of a thermal
// network: nodes with heat capacities and edges carrying one of three
// physics rules.
//
// What:
//
//   - Network holds N node capacities and E edges (kind, parameter, endpoints).
//   - New validates raw caller arrays (parallel slices); FromEdges validates typed edges.
//   - Temperatures are NOT part of a Network: they live in snapshots owned by
//     the simulator, so one Network can drive many runs.
//
// Edge kinds (closed set, codes are part of the external interface):
//
//	0  Transfer   parameter = thermal resistance R        [K/W]
//	1  Radiation  parameter = ε·F·σ·A coefficient k        [W/K⁴]
//	2  HeatInput  parameter = injected power Q             [W]   (node2 only)
//
// Validation order (first violation wins, nothing is allocated past it):
//
//  1. len(parameters) == len(connections) == len(edgeTypes)  → ErrDimensionMismatch
//  2. every capacity > 0 (NaN rejected)                       → ErrNonPositiveCapacity
//  3. every edge kind code known                              → ErrUnknownEdgeKind
//  4. every endpoint index in [0, N)                          → ErrNodeIndexOutOfRange
//
// Every validation error also matches ErrInvalidInput via errors.Is.
//
// Complexity:
//
//   - New / FromEdges: O(N + E) time, O(N + E) memory for the copies.
//   - Components:      O(N + E) time and memory.
//   - Energy:          O(N).
package network
