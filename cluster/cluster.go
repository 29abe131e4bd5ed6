package cluster

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/linkage/dsu"
	"github.com/katalvlaran/linkage/geometry"
	"github.com/katalvlaran/linkage/pairrank"
)

// Compute selects and runs the policy named by opts.Method.
//
//	– MethodLargestGroups: LargestGroups; Value = float64(Product).
//	– MethodConnectAll:    ConnectAll;    Value = ConnectResult.Value.
//	– otherwise:           ErrBadOptions.
func Compute(points []geometry.Point, opts Options) (Result, error) {
	switch opts.Method {
	case MethodLargestGroups:
		g, err := LargestGroups(points, opts)
		if err != nil {
			return Result{}, err
		}

		return Result{Method: opts.Method, Value: float64(g.Product), Groups: &g}, nil
	case MethodConnectAll:
		c, err := ConnectAll(points, opts)
		if err != nil {
			return Result{}, err
		}

		return Result{Method: opts.Method, Value: c.Value, Connect: &c}, nil
	default:
		return Result{}, fmt.Errorf("%w: unknown method %q", ErrBadOptions, opts.Method)
	}
}

// LargestGroups links the opts.K closest pairs and multiplies the sizes of
// the opts.TopGroups largest resulting groups.
//
// Steps:
//  1. Validate TopGroups > 0.
//  2. pairrank.RankKSmallest(points, K).
//  3. Union every returned pair; count the merges.
//  4. Sort group sizes descending and multiply the first TopGroups
//     (all of them if fewer exist, unless Strict).
//
// Complexity: O(n² log K + K·α(n) + g log g).
func LargestGroups(points []geometry.Point, opts Options) (GroupsResult, error) {
	if opts.TopGroups <= 0 {
		return GroupsResult{}, fmt.Errorf("%w: TopGroups must be positive, got %d", ErrBadOptions, opts.TopGroups)
	}

	pairs, err := pairrank.RankKSmallest(points, opts.K, pairrank.WithWorkers(opts.Workers))
	if err != nil {
		return GroupsResult{}, err
	}

	forest := dsu.New(len(points))
	links := 0
	for _, p := range pairs {
		merged, err := forest.Union(p.A, p.B)
		if err != nil {
			return GroupsResult{}, err
		}
		if merged {
			links++
		}
	}

	sizes := forest.GroupSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	top := opts.TopGroups
	if len(sizes) < top {
		if opts.Strict {
			return GroupsResult{}, fmt.Errorf("%w: %d groups, want %d", ErrTooFewGroups, len(sizes), top)
		}
		top = len(sizes)
	}
	product := 1
	for _, s := range sizes[:top] {
		if product > math.MaxInt/s {
			return GroupsResult{}, fmt.Errorf("%w: product of the %d largest groups overflows int", ErrBadOptions, top)
		}
		product *= s
	}

	return GroupsResult{Product: product, Sizes: sizes, Links: links}, nil
}

// ConnectAll links pairs in ascending distance order until one group holds
// every point, and reports the pair that completed it.
//
// Steps:
//  1. n < 2 → ErrUnreachable (no link can ever complete connectivity).
//  2. pairrank.RankAll(points).
//  3. Union pairs in order; record merges; stop when the merged group has size n.
//  4. Exhausting all pairs without that → ErrUnreachable.
//
// Complexity: O(n² log n).
func ConnectAll(points []geometry.Point, opts Options) (ConnectResult, error) {
	if _, err := geometry.CheckDims(points); err != nil {
		return ConnectResult{}, err
	}
	n := len(points)
	if n < 2 {
		return ConnectResult{}, fmt.Errorf("%w: %d point(s)", ErrUnreachable, n)
	}

	pairs, err := pairrank.RankAll(points, pairrank.WithWorkers(opts.Workers))
	if err != nil {
		return ConnectResult{}, err
	}

	forest := dsu.New(n)
	edges := make([]pairrank.Pair, 0, n-1)
	for i, p := range pairs {
		merged, err := forest.Union(p.A, p.B)
		if err != nil {
			return ConnectResult{}, err
		}
		if !merged {
			continue
		}
		edges = append(edges, p)

		size, err := forest.Size(p.A)
		if err != nil {
			return ConnectResult{}, err
		}
		if size == n {
			return ConnectResult{
				Last:     p,
				Value:    points[p.A].X() * points[p.B].X(),
				Edges:    edges,
				Examined: i + 1,
			}, nil
		}
	}

	return ConnectResult{}, fmt.Errorf("%w: %d groups left after %d pairs", ErrUnreachable, forest.Count(), len(pairs))
}
