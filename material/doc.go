// Package material provides an embedded table of common engineering
// materials and turns "this much of that material" into a node heat capacity.
//
//	al, _ := material.Lookup("Al")
//	c := al.HeatCapacity(1 * units.Litre) // J/K
//
// Lookups are case-insensitive and accept short aliases ("cu", "steel").
package material
