// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuantity is returned by the helpers when a physical quantity is
// not strictly positive and finite (conductivity, area, length, ...), or an
// emissivity/view factor falls outside (0, 1].
var ErrInvalidQuantity = errors.New("units: invalid quantity")

// CelsiusToKelvin converts °C to K.
func CelsiusToKelvin(c float64) float64 { return c + ZeroCelsius }

// KelvinToCelsius converts K to °C.
func KelvinToCelsius(k float64) float64 { return k - ZeroCelsius }

// FahrenheitToKelvin converts °F to K.
func FahrenheitToKelvin(f float64) float64 { return (f-32)*5/9 + ZeroCelsius }

// KelvinToFahrenheit converts K to °F.
func KelvinToFahrenheit(k float64) float64 { return (k-ZeroCelsius)*9/5 + 32 }

// ConductionResistance returns the thermal resistance L/(k·A) in K/W of a
// slab with conductivity k (W/(m·K)), cross-section area (m²) and length (m).
func ConductionResistance(k, area, length float64) (float64, error) {
	if err := positive("conductivity", k); err != nil {
		return 0, err
	}
	if err := positive("area", area); err != nil {
		return 0, err
	}
	if err := positive("length", length); err != nil {
		return 0, err
	}
	return length / (k * area), nil
}

// ConvectionResistance returns 1/(h·A) in K/W for a film coefficient h
// (W/(m²·K)) over area (m²).
func ConvectionResistance(h, area float64) (float64, error) {
	if err := positive("film coefficient", h); err != nil {
		return 0, err
	}
	if err := positive("area", area); err != nil {
		return 0, err
	}
	return 1 / (h * area), nil
}

// RadiationCoefficient returns σ·ε·F·A in W/K⁴, the parameter of a
// Radiation edge between a surface of given area and its surroundings.
func RadiationCoefficient(emissivity, viewFactor, area float64) (float64, error) {
	if err := fraction("emissivity", emissivity); err != nil {
		return 0, err
	}
	if err := fraction("view factor", viewFactor); err != nil {
		return 0, err
	}
	if err := positive("area", area); err != nil {
		return 0, err
	}
	return StefanBoltzmann * emissivity * viewFactor * area, nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%s=%g must be positive and finite: %w", name, v, ErrInvalidQuantity)
	}
	return nil
}

func fraction(name string, v float64) error {
	if !(v > 0 && v <= 1) {
		return fmt.Errorf("%s=%g must be in (0, 1]: %w", name, v, ErrInvalidQuantity)
	}
	return nil
}
