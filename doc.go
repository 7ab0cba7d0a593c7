// Package thermonet simulates heat redistribution across a network of
// thermal nodes joined by conductive, radiative or heat-injection edges.
//
// What is inside:
//
//	network/  : validated, immutable node/edge description (capacities, edge kinds)
//	simulate/ : explicit-Euler stepping: edge physics, accumulation, stability guard
//	model/    : named-node builder with a clock and temperature history
//	builder/  : deterministic topology generators (chains, plates, stars, enclosures)
//	material/ : embedded material table (density, specific heat, conductivity)
//	units/    : SI units, physical constants and temperature conversions
//	scenario/ : YAML scenario files
//	metrics/  : Prometheus collectors for runs
//	cmd/thermsim : command-line runner
//
// The root package exposes the raw-array entry point:
//
//	out, err := thermonet.Simulate(temps, caps, params, conns, kinds, dt, steps)
//
// with edge-kind codes 0 = Transfer, 1 = Radiation, 2 = HeatInput.
//
// Quick ASCII example:
//
//	[100 K]──R=1──[0 K]        one step, dt = 0.1 s, C = 1 J/K
//	 → [90 K]       [10 K]
//
// This is not a PDE/FEM solver: no adaptive or implicit stepping, no spatial
// discretisation beyond the node/edge graph you describe.
package thermonet
