// SPDX-License-Identifier: MIT

package material

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMaterial is returned by Lookup for names not in the table.
var ErrUnknownMaterial = errors.New("material: unknown material")

//go:embed materials.yaml
var tableYAML []byte

// Material holds room-temperature bulk properties in SI units.
type Material struct {
	Name         string   `yaml:"name" json:"name"`
	Aliases      []string `yaml:"aliases" json:"aliases"`
	Density      float64  `yaml:"density" json:"density"`             // kg/m³
	SpecificHeat float64  `yaml:"specific_heat" json:"specific_heat"` // J/(kg·K)
	Conductivity float64  `yaml:"conductivity" json:"conductivity"`   // W/(m·K)
	Emissivity   float64  `yaml:"emissivity" json:"emissivity"`
}

// HeatCapacity returns ρ·V·c_p in J/K for the given volume in m³.
func (m Material) HeatCapacity(volume float64) float64 {
	return m.Density * volume * m.SpecificHeat
}

type table struct {
	byKey map[string]Material
	names []string
}

var (
	loadOnce sync.Once
	loaded   table
	loadErr  error
)

func load() (table, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(tableYAML)
	})
	return loaded, loadErr
}

func decode(data []byte) (table, error) {
	var list []Material
	if err := yaml.Unmarshal(data, &list); err != nil {
		return table{}, fmt.Errorf("material: decode table: %w", err)
	}

	t := table{byKey: make(map[string]Material, 2*len(list))}
	for _, m := range list {
		keys := append([]string{m.Name}, m.Aliases...)
		for _, k := range keys {
			k = normalize(k)
			if _, dup := t.byKey[k]; dup {
				return table{}, fmt.Errorf("material: duplicate key %q", k)
			}
			t.byKey[k] = m
		}
		t.names = append(t.names, m.Name)
	}
	slices.Sort(t.names)

	return t, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup finds a material by name or alias, ignoring case and surrounding
// whitespace.
func Lookup(name string) (Material, error) {
	t, err := load()
	if err != nil {
		return Material{}, err
	}
	m, ok := t.byKey[normalize(name)]
	if !ok {
		return Material{}, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
	}
	return m, nil
}

// Names returns the canonical material names in sorted order.
func Names() []string {
	t, err := load()
	if err != nil {
		return nil
	}
	return slices.Clone(t.names)
}
