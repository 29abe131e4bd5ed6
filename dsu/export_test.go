package dsu

// ParentOf exposes the raw parent link of x to dsu_test, so path compression
// can be observed without widening the public API.
func ParentOf(f *Forest, x int) int { return f.parent[x] }
