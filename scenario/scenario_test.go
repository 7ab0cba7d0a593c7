package scenario

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermonet/builder"
	"github.com/katalvlaran/thermonet/material"
	"github.com/katalvlaran/thermonet/model"
	"github.com/katalvlaran/thermonet/network"
)

func parseString(t *testing.T, doc string) (*Scenario, error) {
	t.Helper()
	return Parse(strings.NewReader(doc))
}

func TestLoad_Coffee(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "coffee.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "coffee", s.Name)
	assert.Equal(t, "C", s.Unit())
	require.Len(t, s.Nodes, 2)
	assert.True(t, math.IsInf(s.Nodes[1].Capacity, 1))

	m, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.TimeStep())

	cup, err := m.NodeByName("Cup")
	require.NoError(t, err)
	water, _ := material.Lookup("water")
	assert.InDelta(t, water.HeatCapacity(2.5e-4), m.Network().Capacity(int(cup)), 1e-9)
	T, _ := m.Temperature(cup)
	assert.InDelta(t, 353.15, T, 1e-12)

	require.NoError(t, s.Execute(context.Background(), m))
	assert.Len(t, m.TimeHistory(), 3)
	assert.InDelta(t, 1800, m.Time(), 1e-9)

	T, _ = m.Temperature(cup)
	assert.InDelta(t, 45.3, s.FromKelvin(T), 0.05)
}

func TestLoad_HeatedPlate(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "heated_plate.yaml"))
	require.NoError(t, err)

	m, err := s.Build()
	require.NoError(t, err)
	// Mount, 9 cells, heater, ambient.
	assert.Equal(t, 12, m.NodeCount())
	// 12 plate + 1 heat input + 11 radiation + 1 mount link.
	assert.Equal(t, 25, m.EdgeCount())

	amb, err := m.NodeByName(builder.AmbientNodeID)
	require.NoError(t, err)
	T, _ := m.Temperature(amb)
	assert.Equal(t, 290.0, T)

	// Same seed, same jitter.
	again, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, m.Temperatures(), again.Temperatures())

	require.NoError(t, s.Execute(context.Background(), m))
	assert.Len(t, m.TemperatureHistory(), 1)
	assert.InDelta(t, 10, m.Time(), 1e-9)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":             ``,
		"unknown key":       "steps: 1\nnodes: [{name: a, capacity: 1}]\nbogus: 1\n",
		"no length":         "nodes: [{name: a, capacity: 1}]\n",
		"both lengths":      "steps: 1\nduration: 1\ninterval: 1\nnodes: [{name: a, capacity: 1}]\n",
		"half duration":     "duration: 1\nnodes: [{name: a, capacity: 1}]\n",
		"no nodes":          "steps: 1\n",
		"negative steps":    "steps: -1\nnodes: [{name: a, capacity: 1}]\n",
		"bad dt":            "time_step: -0.1\nsteps: 1\nnodes: [{name: a, capacity: 1}]\n",
		"inf dt":            "time_step: .inf\nsteps: 1\nnodes: [{name: a, capacity: 1}]\n",
		"bad unit":          "temperature_unit: R\nsteps: 1\nnodes: [{name: a, capacity: 1}]\n",
		"nameless node":     "steps: 1\nnodes: [{capacity: 1}]\n",
		"duplicate node":    "steps: 1\nnodes: [{name: a, capacity: 1}, {name: a, capacity: 2}]\n",
		"zero capacity":     "steps: 1\nnodes: [{name: a}]\n",
		"negative capacity": "steps: 1\nnodes: [{name: a, capacity: -3}]\n",
		"both capacity":     "steps: 1\nnodes: [{name: a, capacity: 1, material: water, volume: 1}]\n",
		"no volume":         "steps: 1\nnodes: [{name: a, material: water}]\n",
		"stray volume":      "steps: 1\nnodes: [{name: a, capacity: 1, volume: 1}]\n",
		"nan temperature":   "steps: 1\nnodes: [{name: a, capacity: 1, temperature: .nan}]\n",
		"bad edge kind":     "steps: 1\nnodes: [{name: a, capacity: 1}]\nedges: [{kind: convection, from: a, to: a}]\n",
		"edge without to":   "steps: 1\nnodes: [{name: a, capacity: 1}]\nedges: [{kind: transfer, from: a}]\n",
		"inf parameter":     "steps: 1\nnodes: [{name: a, capacity: 1}]\nedges: [{kind: transfer, from: a, to: a, parameter: .inf}]\n",
		"bad generator":     "steps: 1\ngenerate: [{type: torus}]\n",
		"nan gen temp":      "steps: 1\ngenerate: [{type: chain, n: 2, resistance: 1, temperature: .nan}]\n",
		"inf gen temp":      "steps: 1\ngenerate: [{type: chain, n: 2, resistance: 1, temperature: -.inf}]\n",
		"inf jitter":        "steps: 1\nseed: 1\ngenerate: [{type: chain, n: 2, resistance: 1, jitter: .inf}]\n",
		"nan jitter":        "steps: 1\nseed: 1\ngenerate: [{type: chain, n: 2, resistance: 1, jitter: .nan}]\n",
		"nan resistance":    "steps: 1\ngenerate: [{type: chain, n: 2, resistance: .nan}]\n",
		"inf coefficient":   "steps: 1\nnodes: [{name: a, capacity: 1}]\ngenerate: [{type: enclosure, coefficient: .inf}]\n",
		"nan power":         "steps: 1\nnodes: [{name: a, capacity: 1}]\ngenerate: [{type: heater, target: a, power: .nan}]\n",
		"nan gen capacity":  "steps: 1\ngenerate: [{type: chain, n: 2, resistance: 1, capacity: .nan}]\n",
		"too many workers":  "steps: 1\nworkers: 5000\nnodes: [{name: a, capacity: 1}]\n",
		"not yaml":          "{steps: [",
	}
	for name, doc := range cases {
		_, err := parseString(t, doc)
		assert.ErrorIs(t, err, ErrInvalidScenario, name)
	}
}

func TestValidate_FieldPaths(t *testing.T) {
	_, err := parseString(t, "steps: 1\nnodes: [{name: a, capacity: 1}, {capacity: 2}]\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Scenario.Nodes[1].Name: field is required")

	_, err = parseString(t, "temperature_unit: X\nsteps: 1\nnodes: [{name: a, capacity: 1}]\n")
	assert.ErrorContains(t, err, "must be one of [K C F], got X")

	var s *Scenario
	assert.ErrorIs(t, s.Validate(), ErrInvalidScenario)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown edge endpoint", "steps: 1\nnodes: [{name: a, capacity: 1}]\nedges: [{kind: transfer, from: a, to: b, parameter: 1}]\n", model.ErrUnknownNode},
		{"unknown material", "steps: 1\nnodes: [{name: a, material: vibranium, volume: 1}]\n", material.ErrUnknownMaterial},
		{"generator clash", "steps: 1\nnodes: [{name: \"0\", capacity: 1}]\ngenerate: [{type: chain, n: 2, resistance: 1}]\n", model.ErrDuplicateNode},
		{"generator params", "steps: 1\ngenerate: [{type: chain, n: 1, resistance: 1}]\n", builder.ErrTooFewNodes},
		{"jitter needs seed", "steps: 1\ngenerate: [{type: chain, n: 2, resistance: 1, jitter: 1}]\n", builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		s, err := parseString(t, tc.doc)
		require.NoError(t, err, tc.name)
		_, err = s.Build()
		assert.ErrorIs(t, err, tc.want, tc.name)
		assert.ErrorIs(t, err, ErrInvalidScenario, tc.name)
	}
}

func TestBuild_RevalidatesNonFiniteGenerator(t *testing.T) {
	s, err := parseString(t, "steps: 1\ngenerate: [{type: chain, n: 2, resistance: 1}]\n")
	require.NoError(t, err)

	nan := math.NaN()
	s.Generate[0].Temperature = &nan
	assert.NotPanics(t, func() {
		_, err = s.Build()
	})
	assert.ErrorIs(t, err, ErrInvalidScenario)
	assert.ErrorContains(t, err, "temperature must be finite")

	s.Generate[0].Temperature = nil
	s.Generate[0].Jitter = math.Inf(1)
	assert.NotPanics(t, func() {
		_, err = s.Build()
	})
	assert.ErrorIs(t, err, ErrInvalidScenario)
}

func TestBuild_EdgeKindsAndOverrides(t *testing.T) {
	s, err := parseString(t, `
time_step: 0.5
steps: 4
nodes:
  - {name: heater, temperature: 300, capacity: 1}
  - {name: block, temperature: 300, capacity: 10}
  - {name: shell, temperature: 280, capacity: 50}
edges:
  - {kind: heat_input, from: heater, to: block, parameter: 5}
  - {kind: transfer, from: block, to: shell, parameter: 4}
  - {kind: radiation, from: shell, to: block, parameter: 1.0e-10}
`)
	require.NoError(t, err)

	m, err := s.Build(model.WithTimeStep(0.25))
	require.NoError(t, err)
	assert.Equal(t, 0.25, m.TimeStep())

	kinds := make([]network.EdgeKind, 0, 3)
	for _, e := range m.Network().Edges() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []network.EdgeKind{network.HeatInput, network.Transfer, network.Radiation}, kinds)

	require.NoError(t, s.Execute(context.Background(), m))
	assert.InDelta(t, 1.0, m.Time(), 1e-12)
	assert.Equal(t, 300.0, m.Temperatures()[0])
}

func TestExecute_Cancelled(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "coffee.yaml"))
	require.NoError(t, err)
	m, err := s.Build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Execute(ctx, m)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, m.TimeHistory())
}

func TestTemperatureUnits(t *testing.T) {
	s := &Scenario{TemperatureUnit: "F"}
	assert.InDelta(t, 273.15, s.ToKelvin(32), 1e-9)
	assert.InDelta(t, 212, s.FromKelvin(373.15), 1e-9)
	assert.InDelta(t, 5, s.toKelvinSpan(9), 1e-12)

	k := &Scenario{}
	assert.Equal(t, "K", k.Unit())
	assert.Equal(t, 300.0, k.ToKelvin(300))
	assert.Equal(t, 300.0, k.FromKelvin(300))
}
