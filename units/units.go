// SPDX-License-Identifier: MIT

package units

// Length.
const (
	Metre      = 1.0
	Centimetre = 1e-2 * Metre
	Millimetre = 1e-3 * Metre
	Micrometre = 1e-6 * Metre
	Kilometre  = 1e3 * Metre
)

// Kelvin is the base temperature unit; temperatures are absolute.
const Kelvin = 1.0

// Area and volume.
const (
	SquareMetre      = Metre * Metre
	SquareCentimetre = Centimetre * Centimetre
	SquareMillimetre = Millimetre * Millimetre
	CubicMetre       = Metre * Metre * Metre
	CubicCentimetre  = Centimetre * Centimetre * Centimetre
	Litre            = 1e-3 * CubicMetre
)

// Time.
const (
	Second      = 1.0
	Millisecond = 1e-3 * Second
	Minute      = 60 * Second
	Hour        = 60 * Minute
	Day         = 24 * Hour
)

// Mass.
const (
	Kilogram = 1.0
	Gram     = 1e-3 * Kilogram
	Tonne    = 1e3 * Kilogram
)

// Force and pressure.
const (
	Newton      = Kilogram * Metre / (Second * Second)
	Pascal      = Newton / SquareMetre
	Hectopascal = 100 * Pascal
	Bar         = 1e5 * Pascal
	Atmosphere  = 1013.25 * Hectopascal
)

// Energy and power.
const (
	Joule        = Newton * Metre
	Kilojoule    = 1e3 * Joule
	Megajoule    = 1e6 * Joule
	Calorie      = 4.184 * Joule
	Kilocalorie  = 1e3 * Calorie
	Watt         = Joule / Second
	Kilowatt     = 1e3 * Watt
	WattHour     = Watt * Hour
	KilowattHour = 1e3 * WattHour
)

// Derived thermal units.
const (
	// WattPerMetreKelvin is the unit of thermal conductivity.
	WattPerMetreKelvin = Watt / (Metre * Kelvin)
	// JoulePerKilogramKelvin is the unit of specific heat.
	JoulePerKilogramKelvin = Joule / (Kilogram * Kelvin)
	// JoulePerKelvin is the unit of node heat capacity.
	JoulePerKelvin = Joule / Kelvin
	// KelvinPerWatt is the unit of a Transfer edge parameter.
	KelvinPerWatt = Kelvin / Watt
)

// Physical constants (CODATA 2018, exact where the SI defines them).
const (
	// StefanBoltzmann is σ in W/(m²·K⁴).
	StefanBoltzmann = 5.670374419e-8
	// Boltzmann is k_B in J/K.
	Boltzmann = 1.380649e-23
	// Avogadro is N_A in 1/mol.
	Avogadro = 6.02214076e23
	// GasConstant is R = N_A·k_B in J/(mol·K).
	GasConstant = Avogadro * Boltzmann
)

// Temperature reference points.
const (
	AbsoluteZeroCelsius = -273.15
	ZeroCelsius         = 273.15 // in kelvin
)
