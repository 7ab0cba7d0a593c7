// Package builder provides deterministic, composable topology generators for
// thermal models: chains of rods, plates discretised into cells, star-shaped
// heat sinks, enclosures radiating to an ambient node, and heaters.
//
// Every generator is a Constructor closure. Build creates a model.Model,
// resolves the BuilderOptions once into an immutable configuration, runs the
// constructors in order and finally calls Setup:
//
//	m, err := builder.Build(
//		[]model.Option{model.WithTimeStep(0.01)},
//		[]builder.BuilderOption{builder.WithTemperature(300), builder.WithCapacity(50)},
//		builder.Plate(4, 4, 0.5),
//		builder.Heater("0,0", 25),
//		builder.Enclosure(1e-9),
//	)
//
// Determinism: the same constructors, options and seed always produce the
// same node order, edge order, temperatures and parameters.
//
// Node naming:
//
//	Chain, Ring    cfg.idFn(0..n-1)       ("0","1",... by default)
//	Star           "Center" + cfg.idFn(1..n-1)
//	Plate          "r,c" in row-major order
//	Enclosure      "Ambient"
//	Heater         "Heater:<target>"
//
// Use WithIDScheme (or WithSymbNumb("rod")) to keep several Chains apart.
package builder
