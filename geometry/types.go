// Package geometry defines the Point type and sentinel errors.
package geometry

import "errors"

// ErrInvalidInput indicates malformed coordinate text, a wrong number of
// components, or points whose dimensions disagree.
var ErrInvalidInput = errors.New("geometry: invalid input")

// Dim3 is the dimension used by the junction-box inputs.
const Dim3 = 3

// Point is an immutable point in N-dimensional real space.
// The zero value is a 0-dimensional point and is rejected by every ranker.
type Point struct {
	coords []float64
}
