package cluster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linkage/geometry"
	"github.com/stretchr/testify/require"
)

// sampleInput is the 20 junction boxes used throughout the repository tests.
const sampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func samplePoints(t testing.TB) []geometry.Point {
	t.Helper()
	points, err := geometry.ParsePoints(sampleInput, geometry.Dim3)
	require.NoError(t, err)

	return points
}

// primTotal is a dense O(n²) Prim over the complete Euclidean graph, used as
// an independent oracle for the weight of the spanning tree ConnectAll builds.
func primTotal(t *testing.T, points []geometry.Point) float64 {
	t.Helper()
	n := len(points)
	inTree := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0
	total := 0.0
	for step := 0; step < n; step++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u == -1 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			d, err := geometry.Distance(points[u], points[v])
			require.NoError(t, err)
			if d < best[v] {
				best[v] = d
			}
		}
	}

	return total
}
