// Package cluster links the closest pairs of a point set with a
// disjoint-set forest and reports puzzle-level answers about the resulting
// groups ("circuits").
//
// Pipeline
//
//	points ──► pairrank (closest pairs) ──► dsu.Forest.Union in rank order ──► answer
//
// Policies
//
//   - MethodLargestGroups (LargestGroups): link the K closest pairs
//     (pairrank.RankKSmallest, relaxed order), then multiply the sizes of the
//     TopGroups largest groups. Pairs that are already connected still use
//     up one of the K links. The order inside the K pairs does not change
//     the final partition.
//     When fewer than TopGroups groups exist the missing groups count as
//     size 1, i.e. the product is taken over the groups that do exist. Set
//     Options.Strict to get ErrTooFewGroups instead.
//
//   - MethodConnectAll (ConnectAll): walk every pair in fully sorted order
//     (pairrank.RankAll) and stop at the first union after which one group
//     holds all n points. The answer is the product of the X coordinates of
//     the two points of that final link. The accepted links form a minimum
//     spanning tree, exactly as in Kruskal's algorithm. If connectivity is
//     never reached, including inputs of fewer than two points where no
//     link can exist, ErrUnreachable is returned rather than a sentinel
//     value.
//
// Both policies are pure: the same input and Options always give the same
// Result. The union step is sequential; only distance enumeration may use
// Options.Workers goroutines.
//
// Errors
//
//   - geometry.ErrInvalidInput: inconsistent or non-finite points.
//   - pairrank.ErrNegativeK:    K < 0.
//   - ErrBadOptions:            unknown Method or TopGroups <= 0.
//   - ErrTooFewGroups:          strict LargestGroups with too few groups.
//   - ErrUnreachable:           ConnectAll never connected everything.
//
// Complexity
//
//   - LargestGroups: O(n² log K + K·α(n) + g log g) for g final groups.
//   - ConnectAll:    O(n² log n) dominated by the full sort.
package cluster
