// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/thermonet/metrics"
	"github.com/katalvlaran/thermonet/model"
	"github.com/katalvlaran/thermonet/scenario"
	"github.com/katalvlaran/thermonet/simulate"
)

// Report is the outcome of one scenario run, printed as a table or JSON.
type Report struct {
	RunID    string       `json:"run_id"`
	Scenario string       `json:"scenario"`
	Unit     string       `json:"unit"`
	Time     float64      `json:"time"`
	Elapsed  string       `json:"elapsed"`
	Status   string       `json:"status"`
	Error    string       `json:"error,omitempty"`
	Nodes    []NodeReport `json:"nodes"`
	History  *History     `json:"history,omitempty"`
}

// NodeReport is the final temperature of one node.
type NodeReport struct {
	Name        string   `json:"name"`
	Temperature float64  `json:"temperature"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

// History holds recorded snapshots, temperatures in the scenario's unit.
type History struct {
	Times        []float64   `json:"times"`
	Temperatures [][]float64 `json:"temperatures"`
}

func newReport(runID string, s *scenario.Scenario, m *model.Model, runErr error, elapsed time.Duration) *Report {
	r := &Report{
		RunID:    runID,
		Scenario: s.Name,
		Unit:     s.Unit(),
		Time:     m.Time(),
		Elapsed:  elapsed.Round(time.Microsecond).String(),
		Status:   runStatus(runErr),
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}

	names := m.Names()
	for i, T := range m.Temperatures() {
		n := NodeReport{Name: names[i], Temperature: s.FromKelvin(T)}
		if lo, hi, ok, _ := m.NodeRange(model.NodeID(i)); ok {
			lo, hi = s.FromKelvin(lo), s.FromKelvin(hi)
			n.Min, n.Max = &lo, &hi
		}
		r.Nodes = append(r.Nodes, n)
	}

	if times := m.TimeHistory(); len(times) > 0 {
		h := &History{Times: times}
		for _, row := range m.TemperatureHistory() {
			conv := make([]float64, len(row))
			for i, T := range row {
				conv[i] = s.FromKelvin(T)
			}
			h.Temperatures = append(h.Temperatures, conv)
		}
		r.History = h
	}

	return r
}

func runStatus(err error) string {
	switch {
	case err == nil:
		return metrics.StatusCompleted
	case errors.Is(err, simulate.ErrDivergedSimulation):
		return metrics.StatusDiverged
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusCancelled
	default:
		return metrics.StatusInvalid
	}
}

func (r *Report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) writeText(w io.Writer, withHistory bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "scenario %q  run %s  t=%g s  status=%s  (%s)\n", r.Scenario, r.RunID, r.Time, r.Status, r.Elapsed)
	if r.Error != "" {
		fmt.Fprintf(tw, "error: %s\n", r.Error)
	}
	fmt.Fprintf(tw, "NODE\tTEMPERATURE (%s)\tMIN\tMAX\n", r.Unit)
	fmt.Fprintln(tw, "----\t---------------\t---\t---")
	for _, n := range r.Nodes {
		fmt.Fprintf(tw, "%s\t%.3f\t%s\t%s\n", n.Name, n.Temperature, optional(n.Min), optional(n.Max))
	}

	if withHistory && r.History != nil {
		fmt.Fprintln(tw)
		header := make([]string, 0, len(r.Nodes)+1)
		header = append(header, "TIME (s)")
		for _, n := range r.Nodes {
			header = append(header, n.Name)
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for i, t := range r.History.Times {
			row := []string{fmt.Sprintf("%g", t)}
			for _, T := range r.History.Temperatures[i] {
				row = append(row, fmt.Sprintf("%.3f", T))
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	return tw.Flush()
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}
