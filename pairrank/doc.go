// Package pairrank ranks the unordered pairs of a point set by ascending
// Euclidean distance.
//
// What & Why
//
//   - RankAll returns every pair (A, B) with A < B, fully sorted. This is the
//     edge list Kruskal's algorithm consumes when it must run to completion.
//   - RankKSmallest returns only the k closest pairs. It keeps a bounded
//     max-heap of the best k candidates seen so far, so it needs O(k) extra
//     memory instead of O(n²) and never sorts the full pair list.
//
// Ordering & Determinism
//
//   - Pairs are ordered by Euclidean distance, then by A, then by B. Two
//     pairs whose squared distances differ but round to the same distance
//     are a tie and keep (A, B) order. The tie-break makes the order total:
//     two runs on the same input always agree.
//   - RankKSmallest returns exactly the pairs that would be the first k of
//     RankAll, but in heap order. Callers may rely on set membership only.
//   - The reported Pair.Distance is the exact sqrt(Σ(aᵢ-bᵢ)²).
//
// Inputs
//
//   - Zero or one point yields an empty result, not an error.
//   - All points must share one dimension N ≥ 1 and have finite
//     coordinates, otherwise an error wrapping geometry.ErrInvalidInput is
//     returned.
//
// Options
//
//   - WithWorkers(n) computes distances on n goroutines, each owning a
//     disjoint set of rows. The merge is sequential and uses the same total
//     order, so results do not depend on scheduling.
//
// Complexity
//
//   - RankAll:       O(n² log n) time, O(n²) memory.
//   - RankKSmallest: O(n² log k) time, O(k) memory per worker.
package pairrank
