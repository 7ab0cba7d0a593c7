// SPDX-License-Identifier: MIT
// Package: thermonet/builder
//
// impl_plate.go - Plate(rows, cols, R): a flat plate split into cells.
//
// Canonical model:
//   • 4-neighbourhood grid (right & bottom neighbour per cell).
//   • Cell names use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     deliberately not consulted so coordinates stay explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes); R > 0 and finite.
//   • For each (r,c) emit Right then Bottom if present.
//
// Complexity: O(rows*cols) nodes + O(2*rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/thermonet/model"
)

const (
	methodPlate = "Plate"
	minPlateDim = 1
	plateIDFmt  = "%d,%d" // "r,c"
)

// PlateCellID returns the node name Plate uses for cell (r, c).
func PlateCellID(r, c int) string {
	return fmt.Sprintf(plateIDFmt, r, c)
}

// Plate returns a Constructor that builds a rows×cols conduction grid.
func Plate(rows, cols int, R float64) Constructor {
	return func(m *model.Model, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minPlateDim || cols < minPlateDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodPlate, rows, cols, minPlateDim, ErrTooFewNodes)
		}
		if err := checkResistance(methodPlate, R); err != nil {
			return err
		}

		// 2) All cells in row-major order.
		ids := make([]model.NodeID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id, err := addNode(m, cfg, methodPlate, PlateCellID(r, c))
				if err != nil {
					return err
				}
				ids[r*cols+c] = id
			}
		}

		// 3) Right then Bottom neighbour for every cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := conduct(m, cfg, methodPlate, u, ids[r*cols+c+1], R); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := conduct(m, cfg, methodPlate, u, ids[(r+1)*cols+c], R); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
