// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
)

// ErrDivergedSimulation is matched by every *DivergenceError.
var ErrDivergedSimulation = errors.New("simulate: diverged simulation")

// DivergenceError reports the first contribution that tripped the stability
// guard. Step is 1-based; Edge and Node are indices into the network.
type DivergenceError struct {
	Step  int
	Edge  int
	Node  int
	Delta float64
}

// Error implements error.
func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s: step %d edge %d node %d delta=%g (threshold %g)",
		ErrDivergedSimulation, e.Step, e.Edge, e.Node, e.Delta, DivergenceThreshold)
}

// Unwrap lets errors.Is(err, ErrDivergedSimulation) succeed.
func (e *DivergenceError) Unwrap() error { return ErrDivergedSimulation }
