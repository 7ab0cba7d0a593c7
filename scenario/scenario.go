// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermonet/units"
)

// ErrInvalidScenario wraps every decoding and validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name            string  `yaml:"name"`
	TimeStep        float64 `yaml:"time_step" validate:"omitempty,gt=0"`
	TemperatureUnit string  `yaml:"temperature_unit" validate:"omitempty,oneof=K C F"`
	Steps           *int    `yaml:"steps" validate:"omitempty,gte=0"`
	Duration        float64 `yaml:"duration" validate:"gte=0"`
	Interval        float64 `yaml:"interval" validate:"gte=0"`
	Workers         int     `yaml:"workers" validate:"gte=0,lte=1024"`
	Seed            *int64  `yaml:"seed"`

	Nodes    []Node      `yaml:"nodes" validate:"dive"`
	Generate []Generator `yaml:"generate" validate:"dive"`
	Edges    []Edge      `yaml:"edges" validate:"dive"`
}

// Node is one named thermal mass.
type Node struct {
	Name        string  `yaml:"name" validate:"required"`
	Temperature float64 `yaml:"temperature"`
	Capacity    float64 `yaml:"capacity" validate:"omitempty,gt=0"`
	Material    string  `yaml:"material"`
	Volume      float64 `yaml:"volume" validate:"omitempty,gt=0"`
}

// Edge links two named nodes.
type Edge struct {
	Kind      string  `yaml:"kind" validate:"required,oneof=transfer radiation heat_input"`
	From      string  `yaml:"from" validate:"required"`
	To        string  `yaml:"to" validate:"required"`
	Parameter float64 `yaml:"parameter"`
}

// Generator invokes one builder constructor.
type Generator struct {
	Type        string   `yaml:"type" validate:"required,oneof=chain ring plate star enclosure heater"`
	Prefix      string   `yaml:"prefix"`
	N           int      `yaml:"n" validate:"gte=0"`
	Rows        int      `yaml:"rows" validate:"gte=0"`
	Cols        int      `yaml:"cols" validate:"gte=0"`
	Resistance  float64  `yaml:"resistance"`
	Coefficient float64  `yaml:"coefficient"`
	Target      string   `yaml:"target"`
	Power       float64  `yaml:"power"`
	Temperature *float64 `yaml:"temperature"`
	Capacity    float64  `yaml:"capacity" validate:"omitempty,gt=0"`
	Jitter      float64  `yaml:"jitter" validate:"gte=0"`
}

// Parse decodes and validates a scenario.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Unit returns the temperature unit, defaulting to "K".
func (s *Scenario) Unit() string {
	if s.TemperatureUnit == "" {
		return "K"
	}
	return s.TemperatureUnit
}

// ToKelvin converts a temperature written in the scenario's unit.
func (s *Scenario) ToKelvin(T float64) float64 {
	switch s.Unit() {
	case "C":
		return units.CelsiusToKelvin(T)
	case "F":
		return units.FahrenheitToKelvin(T)
	default:
		return T
	}
}

// FromKelvin converts a kelvin temperature into the scenario's unit.
func (s *Scenario) FromKelvin(T float64) float64 {
	switch s.Unit() {
	case "C":
		return units.KelvinToCelsius(T)
	case "F":
		return units.KelvinToFahrenheit(T)
	default:
		return T
	}
}

// toKelvinSpan converts a temperature difference.
func (s *Scenario) toKelvinSpan(d float64) float64 {
	if s.Unit() == "F" {
		return d * 5 / 9
	}
	return d
}
