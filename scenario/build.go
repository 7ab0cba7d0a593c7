// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"fmt"

	"github.com/katalvlaran/thermonet/builder"
	"github.com/katalvlaran/thermonet/model"
	"github.com/katalvlaran/thermonet/network"
	"github.com/katalvlaran/thermonet/simulate"
)

// Build creates a ready model: declared nodes first, then generators in
// file order, then edges (which may refer to generated nodes), then Setup.
// opts are applied after the scenario's own time step and worker count, so
// callers can override them. The scenario is validated again first; every
// error matches ErrInvalidScenario as well as the underlying sentinel.
func (s *Scenario) Build(opts ...model.Option) (*model.Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var mopts []model.Option
	if s.TimeStep > 0 {
		mopts = append(mopts, model.WithTimeStep(s.TimeStep))
	}
	if s.Workers > 1 {
		mopts = append(mopts, model.WithSimulateOptions(simulate.WithWorkers(s.Workers)))
	}
	mopts = append(mopts, opts...)

	m := model.New(mopts...)

	for i, n := range s.Nodes {
		if err := s.defineNode(m, n); err != nil {
			return nil, fmt.Errorf("%w: Nodes[%d]: %w", ErrInvalidScenario, i, err)
		}
	}

	for i, g := range s.Generate {
		con, err := g.constructor()
		if err != nil {
			return nil, fmt.Errorf("%w: Generate[%d]: %w", ErrInvalidScenario, i, err)
		}
		if err := builder.Apply(m, s.builderOptions(g), con); err != nil {
			return nil, fmt.Errorf("%w: Generate[%d] %s: %w", ErrInvalidScenario, i, g.Type, err)
		}
	}

	for i, e := range s.Edges {
		kind, err := network.ParseEdgeKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: Edges[%d]: %w", ErrInvalidScenario, i, err)
		}
		if err := m.DefineEdgeByName(kind, e.From, e.To, e.Parameter); err != nil {
			return nil, fmt.Errorf("%w: Edges[%d] %s→%s: %w", ErrInvalidScenario, i, e.From, e.To, err)
		}
	}

	if err := m.Setup(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	return m, nil
}

func (s *Scenario) defineNode(m *model.Model, n Node) error {
	T := s.ToKelvin(n.Temperature)
	if n.Material != "" {
		_, err := m.DefineObject(n.Material, T, n.Volume, n.Name)
		return err
	}
	_, err := m.DefineNode(n.Name, T, n.Capacity)
	return err
}

func (s *Scenario) builderOptions(g Generator) []builder.BuilderOption {
	var opts []builder.BuilderOption
	if g.Prefix != "" {
		opts = append(opts, builder.WithSymbNumb(g.Prefix))
	}
	if g.Temperature != nil {
		opts = append(opts, builder.WithTemperature(s.ToKelvin(*g.Temperature)))
	}
	if g.Capacity > 0 {
		opts = append(opts, builder.WithCapacity(g.Capacity))
	}
	if s.Seed != nil {
		opts = append(opts, builder.WithSeed(*s.Seed))
	}
	if g.Jitter > 0 {
		opts = append(opts, builder.WithTemperatureJitter(s.toKelvinSpan(g.Jitter)))
	}
	return opts
}

func (g Generator) constructor() (builder.Constructor, error) {
	switch g.Type {
	case "chain":
		return builder.Chain(g.N, g.Resistance), nil
	case "ring":
		return builder.Ring(g.N, g.Resistance), nil
	case "plate":
		return builder.Plate(g.Rows, g.Cols, g.Resistance), nil
	case "star":
		return builder.Star(g.N, g.Resistance), nil
	case "enclosure":
		return builder.Enclosure(g.Coefficient), nil
	case "heater":
		return builder.Heater(g.Target, g.Power), nil
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", ErrInvalidScenario, g.Type)
	}
}

// Execute runs m for the scenario's length: a single Run of Steps followed
// by one NoteData, or an Execute over Duration/Interval.
func (s *Scenario) Execute(ctx context.Context, m *model.Model) error {
	if s.Steps != nil {
		if err := m.RunContext(ctx, *s.Steps); err != nil {
			return err
		}
		m.NoteData()
		return nil
	}
	return m.ExecuteContext(ctx, s.Duration, s.Interval)
}
