// Package dsu defines the Forest type and sentinel errors.
package dsu

import "errors"

// ErrOutOfRange indicates that an element index is negative or ≥ Len().
var ErrOutOfRange = errors.New("dsu: index out of range")

// Forest is a disjoint-set forest with union by size and path compression.
// The zero value is an empty, valid forest.
type Forest struct {
	parent []int
	size   []int
	groups int
}
