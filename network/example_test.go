// SPDX-License-Identifier: MIT

package network_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/thermonet/network"
)

// ExampleNew builds a two-plate network joined by a conductive edge and
// heated by an external source on the second plate.
func ExampleNew() {
	net, err := network.New(
		[]float64{900, 900}, // J/K
		[]float64{2.5, 40},  // R [K/W], Q [W]
		[][2]uint{{0, 1}, {0, 1}},
		[]int32{int32(network.Transfer), int32(network.HeatInput)},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for j, e := range net.Edges() {
		fmt.Printf("edge %d: %s %d→%d p=%g\n", j, e.Kind, e.N1, e.N2, e.Parameter)
	}
	// Output:
	// edge 0: transfer 0→1 p=2.5
	// edge 1: heat_input 0→1 p=40
}

// ExampleNew_invalid shows how the rule and the class are both matched.
func ExampleNew_invalid() {
	_, err := network.New([]float64{1, 1}, []float64{1}, [][2]uint{{0, 3}}, []int32{0})
	fmt.Println(errors.Is(err, network.ErrInvalidInput))
	fmt.Println(errors.Is(err, network.ErrNodeIndexOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// true
	// network: invalid input: node index out of range: edge 0 node2=3 (N=2)
}
