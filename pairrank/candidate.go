package pairrank

import (
	"container/heap"
	"math"
)

// candidate is a pair with its Euclidean distance, the unit every ranker
// compares. Pairs are only produced from candidates at the very end.
type candidate struct {
	a, b int
	d    float64
}

func newCandidate(a, b int, sq float64) candidate {
	return candidate{a: a, b: b, d: math.Sqrt(sq)}
}

// less is the total order shared by all rankers: distance, then a, then b.
// Distinct squared distances may round to the same distance; those pairs
// tie and fall back to (a, b).
func less(x, y candidate) bool {
	if x.d != y.d {
		return x.d < y.d
	}
	if x.a != y.a {
		return x.a < y.a
	}

	return x.b < y.b
}

func (c candidate) pair() Pair {
	return Pair{A: c.a, B: c.b, Distance: c.d}
}

func toPairs(cands []candidate) []Pair {
	pairs := make([]Pair, len(cands))
	for i, c := range cands {
		pairs[i] = c.pair()
	}

	return pairs
}

// maxHeap implements heap.Interface with the worst candidate on top,
// so the k best are kept by evicting the root.
type maxHeap []candidate

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return less(h[j], h[i]) }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// offer keeps c if the heap holds fewer than k candidates or c beats the worst.
// Complexity: O(log k).
func (h *maxHeap) offer(c candidate, k int) {
	if h.Len() < k {
		heap.Push(h, c)
		return
	}
	if less(c, (*h)[0]) {
		(*h)[0] = c
		heap.Fix(h, 0)
	}
}
