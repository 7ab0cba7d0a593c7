// Package units collects the SI units, physical constants and small
// conversion helpers used to turn engineering data into network parameters.
//
// Everything is expressed in base SI: metres, seconds, kilograms, joules,
// watts and kelvin. Multiply a literal by a unit to get base SI:
//
//	length := 5 * units.Millimetre  // 0.005 m
//	area := 4 * units.SquareCentimetre
//
// The helpers map textbook relations onto edge parameters:
//
//	ConductionResistance(k, A, L) = L / (k·A)        → Transfer parameter (K/W)
//	ConvectionResistance(h, A)    = 1 / (h·A)        → Transfer parameter (K/W)
//	RadiationCoefficient(ε, F, A) = σ·ε·F·A          → Radiation parameter (W/K⁴)
package units
