// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/metrics"
	"github.com/katalvlaran/thermonet/network"
)

// Simulate runs steps explicit-Euler steps of length dt over net, starting
// from temperatures, and returns the final snapshot.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (network.ErrNilNetwork).
//  2. len(temperatures) == net.NodeCount() (network.ErrDimensionMismatch).
//
// Both match network.ErrInvalidInput. During the run a guard failure returns
// a *DivergenceError; a cancelled context returns its error. In every failure
// case the returned slice is nil.
//
// steps ≤ 0 performs no step and returns a copy of temperatures,
// bit-identical, whatever dt is. dt itself is not checked: a NaN dt yields
// NaN temperatures and an infinite one trips the guard.
func Simulate(net *network.Network, temperatures []float64, dt float64, steps int, opts ...Option) ([]float64, error) {
	s, err := New(net, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(temperatures, dt, steps)
}

// Simulator binds a validated network to resolved options so that the same
// configuration can be run many times. A Simulator is not safe for
// concurrent Run calls; use one per goroutine (the Network may be shared).
type Simulator struct {
	net       *network.Network
	options   Options
	state     State
	completed int
}

// New returns a Simulator for net.
func New(net *network.Network, opts ...Option) (*Simulator, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: %w", network.ErrInvalidInput, network.ErrNilNetwork)
	}

	return &Simulator{net: net, options: gatherOptions(opts)}, nil
}

// Network returns the network this simulator runs.
func (s *Simulator) Network() *network.Network { return s.net }

// State returns the state reached by the last Run.
func (s *Simulator) State() State { return s.state }

// StepsCompleted returns how many steps the last Run finished before it
// completed or failed.
func (s *Simulator) StepsCompleted() int { return s.completed }

// Run executes one run; see Simulate for the contract.
func (s *Simulator) Run(temperatures []float64, dt float64, steps int) ([]float64, error) {
	log := s.options.Logger
	start := time.Now()
	s.state, s.completed = Initialized, 0

	// 1) Validate everything before touching any temperature.
	if err := validateRun(s.net, temperatures); err != nil {
		s.state = Failed
		s.options.Metrics.ObserveRun(metrics.StatusInvalid, 0, time.Since(start))
		log.Debug("simulation rejected", zap.Error(err))

		return nil, err
	}
	s.options.Metrics.ObserveNetwork(s.net.NodeCount(), s.net.EdgeCount())

	// 2) No transitions: hand back an untouched copy.
	if steps <= 0 {
		s.state = Completed
		s.options.Metrics.ObserveRun(metrics.StatusCompleted, 0, time.Since(start))

		return cloneSnapshot(temperatures), nil
	}

	log.Debug("simulation started",
		zap.Int("nodes", s.net.NodeCount()),
		zap.Int("edges", s.net.EdgeCount()),
		zap.Int("steps", steps),
		zap.Float64("dt", dt),
		zap.Int("workers", s.options.Workers),
	)

	// 3) Run the state machine.
	r := newRunner(s.net, s.options, temperatures, dt)
	s.state = Running
	final, err := r.run(steps)
	s.completed = r.completed
	elapsed := time.Since(start)

	if err != nil {
		s.state = Failed
		var div *DivergenceError
		switch {
		case errors.As(err, &div):
			s.options.Metrics.ObserveRun(metrics.StatusDiverged, r.completed, elapsed)
			log.Warn("simulation diverged",
				zap.Int("step", div.Step),
				zap.Int("edge", div.Edge),
				zap.Int("node", div.Node),
				zap.Float64("delta", div.Delta),
			)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.options.Metrics.ObserveRun(metrics.StatusCancelled, r.completed, elapsed)
			log.Info("simulation cancelled", zap.Int("completed", r.completed), zap.Error(err))
		default:
			s.options.Metrics.ObserveRun(metrics.StatusInvalid, r.completed, elapsed)
			log.Error("simulation failed", zap.Error(err))
		}

		return nil, err
	}

	s.state = Completed
	s.options.Metrics.ObserveRun(metrics.StatusCompleted, steps, elapsed)
	log.Debug("simulation completed", zap.Int("steps", steps), zap.Duration("elapsed", elapsed))

	return final, nil
}

// validateRun performs the run-level checks listed on Simulate.
func validateRun(net *network.Network, temperatures []float64) error {
	return net.ValidateSnapshot(temperatures)
}

// runner holds the mutable state of a single run.
type runner struct {
	capacities []float64      // read-only view of the network capacities
	edges      []network.Edge // read-only view of the network edges
	options    Options        // resolved options
	dt         float64        // step length
	current    []float64      // snapshot read by the step in progress
	next       []float64      // snapshot being written by the step in progress
	accs       []*Accumulator // one per worker; accs[0] receives the reduction
	chunks     [][2]int       // [lo, hi) edge ranges, one per worker
	completed  int            // steps fully applied
}

func newRunner(net *network.Network, opts Options, temperatures []float64, dt float64) *runner {
	caps, edges := net.View()
	chunks := splitEdges(len(edges), opts.Workers)
	accs := make([]*Accumulator, len(chunks))
	for i := range accs {
		accs[i] = NewAccumulator(len(caps))
	}
	if len(accs) == 0 {
		// Edge-free network: keep one accumulator so apply stays uniform.
		accs = append(accs, NewAccumulator(len(caps)))
	}

	return &runner{
		capacities: caps,
		edges:      edges,
		options:    opts,
		dt:         dt,
		current:    cloneSnapshot(temperatures),
		next:       make([]float64, len(temperatures)),
		accs:       accs,
		chunks:     chunks,
	}
}

// run performs steps transitions and returns the final snapshot.
func (r *runner) run(steps int) ([]float64, error) {
	ctx := r.options.Ctx
	for i := 1; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulate: stopped before step %d of %d: %w", i, steps, err)
		}
		if err := r.step(i); err != nil {
			return nil, err
		}
		r.completed = i
		if r.options.Observer != nil {
			r.options.Observer(i, cloneSnapshot(r.current))
		}
	}

	return r.current, nil
}

// step evaluates all edges against r.current, reduces and applies into
// r.next, then swaps the buffers.
func (r *runner) step(i int) error {
	for _, acc := range r.accs {
		acc.Reset(i)
	}

	// 1) Evaluate + guard + accumulate.
	var err error
	if len(r.chunks) > 1 {
		err = r.evaluateParallel()
	} else {
		err = r.accs[0].AddEdges(r.edges, 0, r.dt, r.current, r.capacities)
	}
	if err != nil {
		return err
	}

	// 2) Reduce worker partials in worker order.
	for _, acc := range r.accs[1:] {
		r.accs[0].Merge(acc)
	}

	// 3) Apply to a fresh buffer, then swap.
	r.accs[0].ApplyTo(r.current, r.next)
	r.current, r.next = r.next, r.current

	return nil
}

func cloneSnapshot(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}
