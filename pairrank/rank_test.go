package pairrank_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/linkage/geometry"
	"github.com/katalvlaran/linkage/pairrank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRankAll_Properties checks ordering, coverage and A<B on the sample.
func TestRankAll_Properties(t *testing.T) {
	points := samplePoints(t)
	n := len(points)

	pairs, err := pairrank.RankAll(points)
	require.NoError(t, err)
	require.Len(t, pairs, n*(n-1)/2)

	seen := make(map[[2]int]bool, len(pairs))
	for i, p := range pairs {
		assert.Less(t, p.A, p.B, "pair %d must have A < B", i)
		key := [2]int{p.A, p.B}
		assert.False(t, seen[key], "pair %v reported twice", key)
		seen[key] = true

		want, err := geometry.Distance(points[p.A], points[p.B])
		require.NoError(t, err)
		assert.Equal(t, want, p.Distance)

		if i > 0 {
			assert.LessOrEqual(t, pairs[i-1].Distance, p.Distance, "distances must be non-decreasing at %d", i)
		}
	}
}

// TestRankAll_ClosestPairs pins the head of the sample ranking.
func TestRankAll_ClosestPairs(t *testing.T) {
	pairs, err := pairrank.RankAll(samplePoints(t))
	require.NoError(t, err)

	// 162,817,812 and 425,690,689 are the closest boxes; next come
	// 162,817,812 with 431,825,988 and 906,360,560 with 805,96,715.
	assert.Equal(t, [2]int{0, 19}, [2]int{pairs[0].A, pairs[0].B})
	assert.Equal(t, [2]int{0, 7}, [2]int{pairs[1].A, pairs[1].B})
	assert.Equal(t, [2]int{2, 13}, [2]int{pairs[2].A, pairs[2].B})
}

// TestRankAll_TieBreak verifies equal distances are ordered by (A, B).
func TestRankAll_TieBreak(t *testing.T) {
	points := []geometry.Point{
		geometry.NewPoint(3), geometry.NewPoint(0), geometry.NewPoint(1), geometry.NewPoint(2),
	}
	pairs, err := pairrank.RankAll(points)
	require.NoError(t, err)

	got := make([][2]int, 3)
	for i := range got {
		got[i] = [2]int{pairs[i].A, pairs[i].B}
		assert.Equal(t, 1.0, pairs[i].Distance)
	}
	assert.Equal(t, [][2]int{{0, 3}, {1, 2}, {2, 3}}, got)
}

// TestRank_RoundedDistanceTie: squared distances 8.1e15+1 and 8.1e15 both
// round to the distance 9e7, so the pairs tie and keep (A, B) order.
func TestRank_RoundedDistanceTie(t *testing.T) {
	points := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(9e7, 1),
		geometry.NewPoint(1e12, 0),
		geometry.NewPoint(1e12+9e7, 0),
	}

	pairs, err := pairrank.RankAll(points)
	require.NoError(t, err)
	require.Len(t, pairs, 6)
	assert.Equal(t, [2]int{0, 1}, [2]int{pairs[0].A, pairs[0].B})
	assert.Equal(t, [2]int{2, 3}, [2]int{pairs[1].A, pairs[1].B})
	assert.Equal(t, pairs[0].Distance, pairs[1].Distance)

	top, err := pairrank.RankKSmallest(points, 1)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, keys(top))
}

// TestRank_SmallInputs ensures zero or one point is an empty result, not an error.
func TestRank_SmallInputs(t *testing.T) {
	for _, points := range [][]geometry.Point{nil, {geometry.NewPoint(1, 2, 3)}} {
		all, err := pairrank.RankAll(points)
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.NotNil(t, all)

		some, err := pairrank.RankKSmallest(points, 5)
		require.NoError(t, err)
		assert.Empty(t, some)
	}
}

// TestRank_InvalidInput rejects mixed dimensions and non-finite coordinates.
func TestRank_InvalidInput(t *testing.T) {
	mixed := []geometry.Point{geometry.NewPoint(1, 2, 3), geometry.NewPoint(1, 2)}
	_, err := pairrank.RankAll(mixed)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
	_, err = pairrank.RankKSmallest(mixed, 1)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)

	nan := []geometry.Point{geometry.NewPoint(0), geometry.NewPoint(math.NaN())}
	_, err = pairrank.RankAll(nan)
	assert.ErrorIs(t, err, geometry.ErrInvalidInput)
}

func TestRankKSmallest_NegativeK(t *testing.T) {
	_, err := pairrank.RankKSmallest(samplePoints(t), -1)
	assert.ErrorIs(t, err, pairrank.ErrNegativeK)
}

// TestRankKSmallest_MatchesPrefix compares membership against RankAll's
// first k entries for every k, sequentially and with workers.
func TestRankKSmallest_MatchesPrefix(t *testing.T) {
	points := samplePoints(t)
	all, err := pairrank.RankAll(points)
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 8} {
		for k := 0; k <= len(all)+5; k++ {
			got, err := pairrank.RankKSmallest(points, k, pairrank.WithWorkers(workers))
			require.NoError(t, err)

			want := all
			if k < len(all) {
				want = all[:k]
			}
			if diff := cmp.Diff(keys(want), keys(got)); diff != "" {
				t.Fatalf("workers=%d k=%d membership mismatch (-want +got):\n%s", workers, k, diff)
			}
		}
	}
}

// TestRankKSmallest_Ties keeps the (A, B)-smallest pairs among equal distances.
func TestRankKSmallest_Ties(t *testing.T) {
	points := []geometry.Point{
		geometry.NewPoint(0), geometry.NewPoint(1), geometry.NewPoint(2), geometry.NewPoint(3),
	}
	got, err := pairrank.RankKSmallest(points, 2)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, keys(got))
}

// TestRankAll_ParallelMatchesSequential requires bit-identical output.
func TestRankAll_ParallelMatchesSequential(t *testing.T) {
	points := samplePoints(t)
	seq, err := pairrank.RankAll(points)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 4, 19, 64} {
		par, err := pairrank.RankAll(points, pairrank.WithWorkers(workers))
		require.NoError(t, err)
		if diff := cmp.Diff(seq, par); diff != "" {
			t.Errorf("workers=%d (-seq +par):\n%s", workers, diff)
		}
	}
}

// TestRank_Deterministic re-runs both rankers on identical input.
func TestRank_Deterministic(t *testing.T) {
	points := samplePoints(t)

	a, err := pairrank.RankAll(points)
	require.NoError(t, err)
	b, err := pairrank.RankAll(points)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	x, err := pairrank.RankKSmallest(points, 10, pairrank.WithWorkers(4))
	require.NoError(t, err)
	y, err := pairrank.RankKSmallest(points, 10, pairrank.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, x, y)
}
