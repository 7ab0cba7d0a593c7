// SPDX-License-Identifier: MIT

// Package simulate advances the temperatures of a thermal network through a
// fixed number of explicit-Euler steps.
//
// Each step:
//
//  1. Evaluate every edge against the snapshot taken at the start of the step
//     (Evaluate). No edge ever sees a temperature written in the same step.
//  2. Guard every single contribution: |Δ| > DivergenceThreshold aborts the
//     whole run with a *DivergenceError.
//  3. Sum contributions per node in an Accumulator (additive, never overwrite).
//  4. Write next = current + sums into a separate buffer and swap.
//
// Physics per edge (T = snapshot, C = capacities):
//
//	Transfer   flow = (T[n2] - T[n1]) / R * dt      n1 += flow/C[n1], n2 -= flow/C[n2]
//	Radiation  flow = (T[n2]⁴ - T[n1]⁴) * k * dt    n1 += flow/C[n1], n2 -= flow/C[n2]
//	HeatInput  flow = Q * dt                        n2 += flow/C[n2]  (n1 unused)
//
// Dividing the shared flow by each endpoint's own capacity makes the energy
// exchanged (C·ΔT) equal and opposite on both sides of Transfer and Radiation
// edges, whatever the capacities are.
//
// Runs are atomic: either all steps complete and the final snapshot is
// returned, or an error is returned and no vector at all. The caller's input
// slice is never written.
//
// Concurrency:
//
//   - Sequential by default.
//   - WithWorkers(n) splits the edge list into n contiguous chunks evaluated on
//     separate goroutines (errgroup). Each worker sums into its own
//     Accumulator; partial sums are reduced in worker order on the calling
//     goroutine before the apply phase, so no locks are needed.
//   - When several chunks diverge in one step, the error for the lowest edge
//     index is reported, exactly as in the sequential order.
//
// Complexity: O(steps · (N + E)) time, O(workers · N) memory.
package simulate
