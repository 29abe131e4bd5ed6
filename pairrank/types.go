// Package pairrank defines the Pair type, options and sentinel errors.
package pairrank

import "errors"

// ErrNegativeK indicates a negative k was passed to RankKSmallest.
var ErrNegativeK = errors.New("pairrank: k must be non-negative")

// Pair is an unordered pair of point indices with A < B.
type Pair struct {
	A, B     int     // indices into the input slice, A < B
	Distance float64 // Euclidean distance between the two points
}

// Options configures pair enumeration.
type Options struct {
	// Workers is the number of goroutines computing distances.
	// Values <= 1 select the sequential path.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of goroutines used to enumerate pairs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns sequential enumeration.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
