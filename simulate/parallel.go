// SPDX-License-Identifier: MIT

package simulate

import "golang.org/x/sync/errgroup"

// splitEdges partitions [0, e) into at most workers contiguous, non-empty
// ranges of near-equal size. It returns nil when e == 0.
func splitEdges(e, workers int) [][2]int {
	if e == 0 {
		return nil
	}
	if workers > e {
		workers = e
	}
	chunks := make([][2]int, 0, workers)
	size, rem := e/workers, e%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + size
		if w < rem {
			hi++
		}
		chunks = append(chunks, [2]int{lo, hi})
		lo = hi
	}

	return chunks
}

// evaluateParallel runs every chunk on its own goroutine. Workers only read
// r.current and r.capacities and write their own accumulator.
func (r *runner) evaluateParallel() error {
	errs := make([]error, len(r.chunks))

	var g errgroup.Group
	for w, ch := range r.chunks {
		w, ch := w, ch
		acc := r.accs[w]
		g.Go(func() error {
			errs[w] = acc.AddEdges(r.edges[ch[0]:ch[1]], ch[0], r.dt, r.current, r.capacities)

			return errs[w]
		})
	}
	if err := g.Wait(); err != nil {
		// Chunks are ordered, so the first failing chunk holds the lowest
		// failing edge index.
		for _, e := range errs {
			if e != nil {
				return e
			}
		}
	}

	return nil
}
