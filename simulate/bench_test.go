// SPDX-License-Identifier: MIT

package simulate_test

import (
	"testing"

	"github.com/katalvlaran/thermonet/simulate"
)

// benchmarkChain runs steps over an n-node transfer chain with the given
// number of workers.
func benchmarkChain(b *testing.B, n, steps, workers int) {
	net := chain(b, n, 5)
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(i % 100)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simulate.Simulate(net, in, 0.1, steps, simulate.WithWorkers(workers)); err != nil {
			b.Fatalf("Simulate failed: %v", err)
		}
	}
}

// BenchmarkSimulate_Chain1k_Sequential: 1 000 nodes, 100 steps.
func BenchmarkSimulate_Chain1k_Sequential(b *testing.B) { benchmarkChain(b, 1_000, 100, 1) }

// BenchmarkSimulate_Chain100k_Sequential: 100 000 nodes, 10 steps.
func BenchmarkSimulate_Chain100k_Sequential(b *testing.B) { benchmarkChain(b, 100_000, 10, 1) }

// BenchmarkSimulate_Chain100k_Workers4: same network on 4 workers.
func BenchmarkSimulate_Chain100k_Workers4(b *testing.B) { benchmarkChain(b, 100_000, 10, 4) }
