// Package scenario reads thermal models from YAML files.
//
// A scenario names its nodes, wires them with typed edges, optionally
// generates regular structures with the builder package, and says how long
// to run:
//
//	name: coffee
//	time_step: 1
//	temperature_unit: C
//	duration: 1800
//	interval: 300
//	nodes:
//	  - {name: Cup,  temperature: 80, material: water, volume: 2.5e-4}
//	  - {name: Room, temperature: 20, capacity: .inf}
//	edges:
//	  - {kind: transfer, from: Cup, to: Room, parameter: 2.0}
//
// Either steps, or duration together with interval, must be set. Node
// capacities are given directly (J/K, .inf for a fixed boundary) or derived
// from a material and a volume (m³).
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package scenario
