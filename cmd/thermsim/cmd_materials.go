// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermonet/material"
)

func newMaterialsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the built-in materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []material.Material
			for _, name := range material.Names() {
				m, err := material.Lookup(name)
				if err != nil {
					return err
				}
				list = append(list, m)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDENSITY (kg/m³)\tSPECIFIC HEAT (J/(kg·K))\tCONDUCTIVITY (W/(m·K))\tEMISSIVITY\tALIASES")
			for _, m := range list {
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%s\n",
					m.Name, m.Density, m.SpecificHeat, m.Conductivity, m.Emissivity, strings.Join(m.Aliases, ", "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print as JSON")

	return cmd
}
