// SPDX-License-Identifier: MIT

package model

import (
	"context"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thermonet/simulate"
)

// recordEpsilon absorbs float error in duration/interval and interval/dt,
// so that 0.3/0.1 counts as 3 records rather than 2.
const recordEpsilon = 1e-9

// Run advances the model by steps time steps. On success the temperatures
// are replaced and Time grows by steps·dt; on failure neither changes.
// steps ≤ 0 is a no-op.
func (m *Model) Run(steps int) error {
	return m.RunContext(context.Background(), steps)
}

// RunContext is Run with cancellation checked between steps.
func (m *Model) RunContext(ctx context.Context, steps int) error {
	if !m.ready {
		return ErrNotReady
	}

	opts := make([]simulate.Option, 0, len(m.opts.SimOptions)+2)
	opts = append(opts, simulate.WithLogger(m.opts.Logger))
	opts = append(opts, m.opts.SimOptions...)
	opts = append(opts, simulate.WithContext(ctx))
	sim, err := simulate.New(m.net, opts...)
	if err != nil {
		return err
	}

	out, err := sim.Run(m.temps, m.opts.TimeStep, steps)
	m.state = sim.State()
	if err != nil {
		return fmt.Errorf("model run at t=%gs: %w", m.time, err)
	}

	m.temps = out
	if steps > 0 {
		m.time += m.opts.TimeStep * float64(steps)
	}

	return nil
}

// State returns the simulator state reached by the last Run.
func (m *Model) State() simulate.State { return m.state }

// NoteData appends the current temperatures and time to the history.
func (m *Model) NoteData() {
	m.tempHistory = append(m.tempHistory, slices.Clone(m.temps))
	m.timeHistory = append(m.timeHistory, m.time)
}

// Execute runs floor(duration/interval) records of round(interval/dt) steps
// each, calling NoteData after every record. It stops at the first failing
// record; history written before the failure is kept.
func (m *Model) Execute(duration, interval float64) error {
	return m.ExecuteContext(context.Background(), duration, interval)
}

// ExecuteContext is Execute with cancellation.
func (m *Model) ExecuteContext(ctx context.Context, duration, interval float64) error {
	if !m.ready {
		return ErrNotReady
	}

	stepsPer, records, err := m.plan(duration, interval)
	if err != nil {
		return err
	}

	m.log.Debug("execute",
		zap.Float64("duration", duration),
		zap.Float64("interval", interval),
		zap.Int("records", records),
		zap.Int("steps_per_record", stepsPer),
	)

	for i := 0; i < records; i++ {
		if err := m.RunContext(ctx, stepsPer); err != nil {
			return fmt.Errorf("execute record %d of %d: %w", i+1, records, err)
		}
		m.NoteData()
	}

	return nil
}

func (m *Model) plan(duration, interval float64) (stepsPer, records int, err error) {
	if !(duration > 0) || !(interval > 0) || math.IsInf(duration, 0) || math.IsInf(interval, 0) {
		return 0, 0, fmt.Errorf("duration=%g interval=%g: %w", duration, interval, ErrInvalidInterval)
	}

	stepsPer = int(math.Round(interval / m.opts.TimeStep))
	if stepsPer < 1 {
		return 0, 0, fmt.Errorf("interval=%g shorter than dt=%g: %w", interval, m.opts.TimeStep, ErrInvalidInterval)
	}
	records = int(math.Floor(duration/interval + recordEpsilon))

	return stepsPer, records, nil
}

// TemperatureHistory returns a deep copy of the recorded snapshots.
func (m *Model) TemperatureHistory() [][]float64 {
	out := make([][]float64, len(m.tempHistory))
	for i, row := range m.tempHistory {
		out[i] = slices.Clone(row)
	}
	return out
}

// TimeHistory returns a copy of the recorded times.
func (m *Model) TimeHistory() []float64 { return slices.Clone(m.timeHistory) }

// NodeHistory returns the recorded temperatures of a single node.
func (m *Model) NodeHistory(id NodeID) ([]float64, error) {
	if !m.has(id) {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	out := make([]float64, 0, len(m.tempHistory))
	for _, row := range m.tempHistory {
		// Rows recorded before id was defined are shorter.
		if int(id) < len(row) {
			out = append(out, row[id])
		}
	}
	return out, nil
}

// NodeRange returns the lowest and highest recorded temperature of id.
// ok is false when nothing has been recorded for id yet.
func (m *Model) NodeRange(id NodeID) (lo, hi float64, ok bool, err error) {
	hist, err := m.NodeHistory(id)
	if err != nil || len(hist) == 0 {
		return 0, 0, false, err
	}
	return floats.Min(hist), floats.Max(hist), true, nil
}
