package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NewPoint returns a Point holding a copy of coords.
// Complexity: O(N).
func NewPoint(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Point{coords: c}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.coords) }

// At returns the i-th coordinate. It panics if i is outside [0, Dim()).
func (p Point) At(i int) float64 { return p.coords[i] }

// X returns the first coordinate.
func (p Point) X() float64 { return p.coords[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p.coords[1] }

// Z returns the third coordinate.
func (p Point) Z() float64 { return p.coords[2] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)

	return c
}

// String renders the point in the same comma-separated form ParsePoint accepts.
func (p Point) String() string {
	parts := make([]string, len(p.coords))
	for i, v := range p.coords {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strings.Join(parts, ",")
}

// SquaredDistance returns Σ(aᵢ-bᵢ)².
// Both points must have the same dimension; otherwise ErrInvalidInput is returned.
// Complexity: O(N).
func SquaredDistance(a, b Point) (float64, error) {
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("%w: dimension %d vs %d", ErrInvalidInput, a.Dim(), b.Dim())
	}

	return sumOfSquares(a.coords, b.coords), nil
}

// Distance returns the Euclidean distance sqrt(Σ(aᵢ-bᵢ)²).
// Complexity: O(N).
func Distance(a, b Point) (float64, error) {
	sq, err := SquaredDistance(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// SumOfSquares is the unchecked kernel behind SquaredDistance, for callers
// that have already validated dimensions (the rankers call it O(n²) times).
// It iterates a's coordinates: it panics if b has fewer, and ignores the
// surplus if b has more. Run CheckDims first.
func SumOfSquares(a, b Point) float64 {
	return sumOfSquares(a.coords, b.coords)
}

func sumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// CheckDims verifies that points is non-degenerate: every point has the
// same dimension, that dimension is at least 1, and no coordinate is NaN or
// infinite. An empty slice is valid. It returns the common dimension (0 for
// an empty slice).
func CheckDims(points []Point) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := points[0].Dim()
	if dim == 0 {
		return 0, fmt.Errorf("%w: point 0 has no coordinates", ErrInvalidInput)
	}
	for i, p := range points {
		if p.Dim() != dim {
			return 0, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrInvalidInput, i, p.Dim(), dim)
		}
		for _, v := range p.coords {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w: point %d has non-finite coordinate", ErrInvalidInput, i)
			}
		}
	}

	return dim, nil
}
