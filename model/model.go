// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/thermonet/material"
	"github.com/katalvlaran/thermonet/network"
	"github.com/katalvlaran/thermonet/simulate"
)

// NodeID is the index of a node in definition order.
type NodeID int

// Model is a named thermal network with a clock.
type Model struct {
	opts Options
	log  *zap.Logger

	names []string
	index map[string]NodeID
	temps []float64
	caps  []float64
	edges []network.Edge

	net   *network.Network
	ready bool
	state simulate.State

	time        float64
	tempHistory [][]float64
	timeHistory []float64
}

// New returns an empty model at time 0.
func New(opts ...Option) *Model {
	o := gatherOptions(opts)
	return &Model{
		opts:  o,
		log:   o.Logger.Named("model"),
		index: make(map[string]NodeID),
	}
}

// DefineNode adds a node with temperature T (K) and capacity C (J/K).
// C must be positive; +Inf declares a fixed-temperature boundary.
func (m *Model) DefineNode(name string, T, C float64) (NodeID, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if _, dup := m.index[name]; dup {
		return 0, fmt.Errorf("%q: %w", name, ErrDuplicateNode)
	}
	if !(C > 0) {
		return 0, fmt.Errorf("node %q capacity=%g: %w: %w",
			name, C, network.ErrInvalidInput, network.ErrNonPositiveCapacity)
	}

	id := NodeID(len(m.names))
	m.names = append(m.names, name)
	m.index[name] = id
	m.temps = append(m.temps, T)
	m.caps = append(m.caps, C)
	m.ready = false

	return id, nil
}

// DefineObject adds a node whose capacity is ρ·V·c_p of the named material.
// volume is in m³.
func (m *Model) DefineObject(materialName string, T, volume float64, name string) (NodeID, error) {
	mat, err := material.Lookup(materialName)
	if err != nil {
		return 0, fmt.Errorf("object %q: %w", name, err)
	}
	return m.DefineNode(name, T, mat.HeatCapacity(volume))
}

// DefineConduction links a and b through a thermal resistance R (K/W).
func (m *Model) DefineConduction(a, b NodeID, R float64) error {
	return m.defineEdge(network.Transfer, a, b, R)
}

// DefineRadiation links a and b radiatively with coefficient k (W/K⁴).
func (m *Model) DefineRadiation(a, b NodeID, k float64) error {
	return m.defineEdge(network.Radiation, a, b, k)
}

// DefineHeatInput injects Q watts into target every step. The source node is
// kept for bookkeeping only; its temperature is not changed.
func (m *Model) DefineHeatInput(source, target NodeID, Q float64) error {
	return m.defineEdge(network.HeatInput, source, target, Q)
}

// DefineEdgeByName adds an edge of the given kind between two named nodes.
func (m *Model) DefineEdgeByName(kind network.EdgeKind, from, to string, parameter float64) error {
	a, err := m.NodeByName(from)
	if err != nil {
		return err
	}
	b, err := m.NodeByName(to)
	if err != nil {
		return err
	}
	return m.defineEdge(kind, a, b, parameter)
}

func (m *Model) defineEdge(kind network.EdgeKind, a, b NodeID, parameter float64) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %w: %d", network.ErrInvalidInput, network.ErrUnknownEdgeKind, int32(kind))
	}
	for _, id := range [...]NodeID{a, b} {
		if !m.has(id) {
			return fmt.Errorf("%s edge: node %d: %w", kind, id, ErrUnknownNode)
		}
	}

	m.edges = append(m.edges, network.Edge{Kind: kind, Parameter: parameter, N1: int(a), N2: int(b)})
	m.ready = false

	return nil
}

func (m *Model) has(id NodeID) bool { return id >= 0 && int(id) < len(m.names) }

// NodeByName resolves a node name.
func (m *Model) NodeByName(name string) (NodeID, error) {
	id, ok := m.index[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownNode)
	}
	return id, nil
}

// Name returns the name of id, or "" if it does not exist.
func (m *Model) Name(id NodeID) string {
	if !m.has(id) {
		return ""
	}
	return m.names[id]
}

// Names returns node names in NodeID order.
func (m *Model) Names() []string { return slices.Clone(m.names) }

// NodeCount returns the number of defined nodes.
func (m *Model) NodeCount() int { return len(m.names) }

// EdgeCount returns the number of defined edges.
func (m *Model) EdgeCount() int { return len(m.edges) }

// Setup packs the definitions into a validated network. It must be called
// before Run and again after any later definition.
func (m *Model) Setup() error {
	net, err := network.FromEdges(m.caps, m.edges)
	if err != nil {
		m.ready = false
		return fmt.Errorf("model setup: %w", err)
	}

	m.net, m.ready = net, true
	m.log.Debug("model ready",
		zap.Int("nodes", net.NodeCount()),
		zap.Int("edges", net.EdgeCount()),
		zap.Float64("dt", m.opts.TimeStep),
	)

	return nil
}

// Ready reports whether Setup has been called since the last definition.
func (m *Model) Ready() bool { return m.ready }

// Network returns the network built by the last successful Setup, or nil.
func (m *Model) Network() *network.Network {
	if !m.ready {
		return nil
	}
	return m.net
}

// TimeStep returns dt in seconds.
func (m *Model) TimeStep() float64 { return m.opts.TimeStep }

// Time returns the simulated time in seconds.
func (m *Model) Time() float64 { return m.time }

// Temperature returns the current temperature of id.
func (m *Model) Temperature(id NodeID) (float64, error) {
	if !m.has(id) {
		return 0, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	return m.temps[id], nil
}

// SetTemperature overrides the current temperature of id.
func (m *Model) SetTemperature(id NodeID, T float64) error {
	if !m.has(id) {
		return fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	m.temps[id] = T
	return nil
}

// Temperatures returns a copy of the current temperature vector.
func (m *Model) Temperatures() []float64 { return slices.Clone(m.temps) }

// Energy returns Σ C·T over all nodes. Requires Setup.
func (m *Model) Energy() (float64, error) {
	if !m.ready {
		return 0, ErrNotReady
	}
	return m.net.Energy(m.temps)
}
