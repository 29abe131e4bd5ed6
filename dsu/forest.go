package dsu

import (
	"fmt"
	"sort"
)

// New creates a Forest of n singleton groups: parent[i] = i, size[i] = 1.
// n <= 0 yields an empty forest on which every index is out of range.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &Forest{parent: parent, size: size, groups: n}
}

// Len returns the size of the universe.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the current number of groups.
// Complexity: O(1).
func (f *Forest) Count() int { return f.groups }

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, x, len(f.parent))
	}

	return nil
}

// Find returns the root of x's group and compresses the path from x.
// Although it reads like a query, Find writes to the forest.
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.find(x), nil
}

// find is Find without the bounds check.
func (f *Forest) find(x int) int {
	// Walk to the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// Relink every node on the path directly to root.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the groups of x and y. It returns false, and changes nothing
// but compressed paths, when they already share a root. Otherwise the smaller
// group's root is attached under the larger group's root (y's root under x's
// on a tie), sizes are summed, and true is returned.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	rootX := f.find(x)
	rootY := f.find(y)
	if rootX == rootY {
		return false, nil
	}
	if f.size[rootX] < f.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	f.parent[rootY] = rootX
	f.size[rootX] += f.size[rootY]
	f.groups--

	return true, nil
}

// Size returns the number of elements in x's group.
// Complexity: O(α(n)) amortized.
func (f *Forest) Size(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.size[f.find(x)], nil
}

// Connected reports whether x and y are in the same group.
func (f *Forest) Connected(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	return f.find(x) == f.find(y), nil
}

// Roots returns the distinct group roots in ascending order.
// Complexity: O(n·α(n)).
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.groups)
	for i := range f.parent {
		if f.parent[i] == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// GroupSizes returns one size per group, in Roots() order.
func (f *Forest) GroupSizes() []int {
	roots := f.Roots()
	sizes := make([]int, len(roots))
	for i, r := range roots {
		sizes[i] = f.size[r]
	}

	return sizes
}

// Groups materializes the partition. Members of each group are ascending and
// groups are ordered by their smallest member.
// Complexity: O(n·α(n)) plus an O(g log g) sort over g groups.
func (f *Forest) Groups() [][]int {
	byRoot := make(map[int][]int, f.groups)
	for i := range f.parent {
		r := f.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	groups := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})

	return groups
}
