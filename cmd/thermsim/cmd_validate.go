// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermonet/model"
	"github.com/katalvlaran/thermonet/scenario"
)

// validation is the validate command's JSON output.
type validation struct {
	Scenario   string     `json:"scenario"`
	Nodes      int        `json:"nodes"`
	Edges      int        `json:"edges"`
	Components [][]string `json:"components"`
	Isolated   []string   `json:"isolated"`
}

func newValidateCmd(a *app) *cobra.Command {
	var (
		file    string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario without running it",
		Long: `validate decodes the scenario, resolves every name and builds the
network. It also lists connected components: a component with no path to
the rest never exchanges heat with it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(file)
			if err != nil {
				return err
			}
			m, err := s.Build(model.WithLogger(a.log))
			if err != nil {
				return err
			}

			v := describe(s, m)
			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}

			fmt.Fprintf(out, "ok: %q has %d nodes, %d edges, %d component(s)\n",
				v.Scenario, v.Nodes, v.Edges, len(v.Components))
			if len(v.Components) > 1 {
				for i, c := range v.Components {
					fmt.Fprintf(out, "  component %d: %s\n", i, strings.Join(c, ", "))
				}
			}
			if len(v.Isolated) > 0 {
				fmt.Fprintf(out, "warning: isolated nodes never change temperature: %s\n", strings.Join(v.Isolated, ", "))
			}
			if heated := selfHeated(v); len(heated) > 0 {
				fmt.Fprintf(out, "note: nodes heated only by their own heat input: %s\n", strings.Join(heated, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Scenario YAML file (required)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func describe(s *scenario.Scenario, m *model.Model) validation {
	net := m.Network()
	v := validation{
		Scenario: s.Name,
		Nodes:    net.NodeCount(),
		Edges:    net.EdgeCount(),
		Isolated: []string{},
	}
	for _, comp := range net.Components() {
		names := make([]string, len(comp))
		for i, id := range comp {
			names[i] = m.Name(model.NodeID(id))
		}
		v.Components = append(v.Components, names)
	}
	for _, id := range net.Isolated() {
		v.Isolated = append(v.Isolated, m.Name(model.NodeID(id)))
	}
	return v
}

// selfHeated lists single-node components that are not isolated, which
// means a self-loop HeatInput drives them.
func selfHeated(v validation) []string {
	var out []string
	for _, c := range v.Components {
		if len(c) == 1 && !slices.Contains(v.Isolated, c[0]) {
			out = append(out, c[0])
		}
	}
	return out
}
