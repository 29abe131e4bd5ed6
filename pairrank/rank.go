package pairrank

import (
	"sort"

	"github.com/katalvlaran/linkage/geometry"
	"golang.org/x/sync/errgroup"
)

// RankAll returns every unordered pair i<j sorted by ascending distance,
// ties broken by (A, B). Zero or one point yields an empty slice.
//
// Steps:
//  1. Validate dimensions; n < 2 → empty.
//  2. Compute all n(n-1)/2 distances (in parallel with WithWorkers).
//  3. Sort by the total order and convert to Pairs.
//
// Complexity: O(n² log n) time, O(n²) memory.
func RankAll(points []geometry.Point, opts ...Option) ([]Pair, error) {
	if _, err := geometry.CheckDims(points); err != nil {
		return nil, err
	}
	n := len(points)
	if n < 2 {
		return []Pair{}, nil
	}
	o := buildOptions(opts)

	cands := make([]candidate, n*(n-1)/2)
	err := forEachRow(n, o.Workers, func(i int) {
		// Rows own disjoint index ranges, so workers never write the same slot.
		idx := rowOffset(n, i)
		for j := i + 1; j < n; j++ {
			cands[idx] = newCandidate(i, j, geometry.SumOfSquares(points[i], points[j]))
			idx++
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(cands, func(x, y int) bool {
		return less(cands[x], cands[y])
	})

	return toPairs(cands), nil
}

// RankKSmallest returns the min(k, n(n-1)/2) closest pairs: exactly the set
// RankAll would place first, in unspecified (heap) order.
//
// Steps:
//  1. Validate; k < 0 → ErrNegativeK; k == 0 or n < 2 → empty.
//  2. Each worker streams its rows through a bounded max-heap of size k.
//  3. Worker heaps are merged, in worker order, into one heap of size k.
//
// Complexity: O(n² log k) time, O(k·workers) memory.
func RankKSmallest(points []geometry.Point, k int, opts ...Option) ([]Pair, error) {
	if k < 0 {
		return nil, ErrNegativeK
	}
	if _, err := geometry.CheckDims(points); err != nil {
		return nil, err
	}
	n := len(points)
	total := n * (n - 1) / 2
	if k == 0 || total == 0 {
		return []Pair{}, nil
	}
	if k > total {
		k = total
	}
	o := buildOptions(opts)
	workers := clampWorkers(n, o.Workers)

	heaps := make([]maxHeap, workers)
	for w := range heaps {
		heaps[w] = make(maxHeap, 0, k)
	}
	err := forEachRowOf(n, workers, func(w, i int) {
		h := &heaps[w]
		for j := i + 1; j < n; j++ {
			h.offer(newCandidate(i, j, geometry.SumOfSquares(points[i], points[j])), k)
		}
	})
	if err != nil {
		return nil, err
	}

	best := heaps[0]
	for _, h := range heaps[1:] {
		for _, c := range h {
			best.offer(c, k)
		}
	}

	return toPairs(best), nil
}

// rowOffset is the index of pair (i, i+1) in the row-major upper triangle.
func rowOffset(n, i int) int {
	return i*(2*n-i-1)/2
}

// clampWorkers bounds the worker count to [1, n-1]; row n-1 has no pairs.
func clampWorkers(n, workers int) int {
	if workers > n-1 {
		workers = n - 1
	}
	if workers < 1 {
		workers = 1
	}

	return workers
}

// forEachRow calls fn(i) for every row 0..n-2.
func forEachRow(n, workers int, fn func(i int)) error {
	return forEachRowOf(n, clampWorkers(n, workers), func(_, i int) { fn(i) })
}

// forEachRowOf distributes rows round-robin over workers (row i goes to
// worker i mod workers, which balances the shrinking row lengths) and calls
// fn(worker, row). A single worker runs inline on the caller's goroutine.
func forEachRowOf(n, workers int, fn func(w, i int)) error {
	if workers <= 1 {
		for i := 0; i < n-1; i++ {
			fn(0, i)
		}

		return nil
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n-1; i += workers {
				fn(w, i)
			}

			return nil
		})
	}

	return g.Wait()
}
