// Package dsu provides a disjoint-set forest (union-find) over the fixed
// integer universe {0, …, n-1}.
//
// What & Why
//
//   - A Forest tracks a partition of n elements into groups. It answers
//     "are x and y in the same group?" and "how large is x's group?" in
//     amortized near-constant time, and merges groups on demand.
//   - It is the connectivity engine behind Kruskal-style algorithms: the
//     cluster package feeds it closest pairs one at a time.
//
// Heuristics
//
//   - Union by size: the root of the smaller group is attached under the
//     root of the larger one. On equal sizes the second argument's root goes
//     under the first argument's root, so results are deterministic.
//   - Path compression: Find relinks every node it visits directly to the
//     root. Find therefore MUTATES the forest even though callers think of
//     it as a lookup; a Forest is not safe for concurrent use, including
//     concurrent Finds.
//
// State
//
//	parent[i]: ancestor of i; parent[r] == r exactly when r is a root.
//	size[r]  : number of elements in r's group; meaningful only at roots.
//	groups   : number of roots.
//
// The partition only ever coarsens: there is no split or removal.
//
// Errors
//
//   - ErrOutOfRange: an index outside [0, n) was passed in. This is a caller
//     bug and is never clamped.
//
// Complexity
//
//   - New: O(n) time and memory.
//   - Find, Union, Size, Connected: O(α(n)) amortized.
//   - Roots, GroupSizes, Groups: O(n·α(n)).
package dsu
