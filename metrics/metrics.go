// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for simulation runs.
//
// A Collector is registered against a caller-supplied registry so tests and
// embedders never touch the global default registry. A nil *Collector is
// valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcome labels for RunsTotal.
const (
	StatusCompleted = "completed"
	StatusDiverged  = "diverged"
	StatusInvalid   = "invalid"
	StatusCancelled = "cancelled"
)

// Collector holds all simulation metrics.
type Collector struct {
	RunsTotal        *prometheus.CounterVec
	StepsTotal       prometheus.Counter
	DivergencesTotal prometheus.Counter
	RunDuration      prometheus.Histogram
	NetworkEdges     prometheus.Gauge
	NetworkNodes     prometheus.Gauge

	registry *prometheus.Registry
}

// NewCollector creates a Collector on a fresh registry.
func NewCollector() *Collector {
	return NewCollectorWith(prometheus.NewRegistry())
}

// NewCollectorWith creates a Collector registered on reg.
func NewCollectorWith(reg *prometheus.Registry) *Collector {
	c := &Collector{registry: reg}

	c.RunsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "thermonet_runs_total",
			Help: "Total number of simulation runs by outcome",
		},
		[]string{"status"},
	)

	c.StepsTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "thermonet_steps_total",
			Help: "Total number of completed integration steps",
		},
	)

	c.DivergencesTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "thermonet_divergences_total",
			Help: "Total number of runs aborted by the stability guard",
		},
	)

	c.RunDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "thermonet_run_duration_seconds",
			Help:    "Wall-clock duration of simulation runs in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0, 60.0},
		},
	)

	c.NetworkEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "thermonet_network_edges",
			Help: "Number of edges in the most recently simulated network",
		},
	)

	c.NetworkNodes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "thermonet_network_nodes",
			Help: "Number of nodes in the most recently simulated network",
		},
	)

	return c
}

// Registry returns the registry the collectors are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// ObserveNetwork records the size of the network about to be simulated.
func (c *Collector) ObserveNetwork(nodes, edges int) {
	if c == nil {
		return
	}
	c.NetworkNodes.Set(float64(nodes))
	c.NetworkEdges.Set(float64(edges))
}

// ObserveRun records one finished run. steps is the number of steps that
// completed before the run ended.
func (c *Collector) ObserveRun(status string, steps int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.RunsTotal.WithLabelValues(status).Inc()
	c.StepsTotal.Add(float64(steps))
	c.RunDuration.Observe(elapsed.Seconds())
	if status == StatusDiverged {
		c.DivergencesTotal.Inc()
	}
}

// WriteTextfile writes the current state in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, c.registry)
}
