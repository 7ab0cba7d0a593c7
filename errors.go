// SPDX-License-Identifier: MIT

package thermonet

import (
	"fmt"

	"github.com/katalvlaran/thermonet/network"
)

func invalidNodeArrays(temps, caps int) error {
	return fmt.Errorf("%w: %w: temperatures=%d capacities=%d",
		network.ErrInvalidInput, network.ErrDimensionMismatch, temps, caps)
}
