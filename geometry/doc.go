// Package geometry provides the fixed-dimension point type shared by the
// ranking and clustering packages of github.com/katalvlaran/linkage, together
// with the Euclidean distance and a parser for comma-separated coordinates.
//
// What:
//
//   - Point is an immutable, fixed-length sequence of float64 coordinates.
//     Its dimension is chosen at construction time (typically 3) and never
//     changes afterwards.
//   - Distance returns the exact IEEE-754 Euclidean norm of the difference,
//     sqrt(Σ(aᵢ-bᵢ)²). SquaredDistance skips the square root and is what
//     rankers use for ordering, since it is monotone in Distance.
//   - ParsePoint / ParsePoints / ReadPoints turn lines such as "162,817,812"
//     into Points, one per line, identified by their 0-based line order.
//
// Errors:
//
//   - ErrInvalidInput: non-numeric component, wrong arity, zero dimension,
//     or points of different dimensions inside one input.
//
// Complexity:
//
//   - Distance, SquaredDistance: O(N) for dimension N.
//   - ParsePoints: O(total input length).
package geometry
