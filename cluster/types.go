// Package cluster defines policy selection, options, results and sentinel errors.
package cluster

import (
	"errors"

	"github.com/katalvlaran/linkage/pairrank"
)

// ErrUnreachable indicates that linking every ranked pair never produced a
// single group holding all points.
var ErrUnreachable = errors.New("cluster: full connectivity never reached")

// ErrTooFewGroups indicates a strict LargestGroups run ended with fewer
// groups than Options.TopGroups.
var ErrTooFewGroups = errors.New("cluster: fewer groups than requested")

// ErrBadOptions indicates an unknown Method or a non-positive TopGroups.
var ErrBadOptions = errors.New("cluster: invalid options")

// Method selects the clustering policy.
type Method string

const (
	// MethodLargestGroups links the K closest pairs and multiplies the
	// sizes of the TopGroups largest groups.
	MethodLargestGroups Method = "largest-groups"

	// MethodConnectAll links pairs in ascending order until everything is
	// connected and reports the last link.
	MethodConnectAll Method = "connect-all"
)

// Default values used by DefaultOptions.
const (
	DefaultK         = 1000
	DefaultTopGroups = 3
)

// Options configures a clustering run.
type Options struct {
	// Method to use: MethodLargestGroups or MethodConnectAll.
	Method Method

	// K is the number of closest pairs linked by MethodLargestGroups.
	K int

	// TopGroups is how many of the largest groups are multiplied.
	TopGroups int

	// Strict makes MethodLargestGroups fail with ErrTooFewGroups instead of
	// taking the product over the groups that exist.
	Strict bool

	// Workers is forwarded to pairrank.WithWorkers.
	Workers int
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the policy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithK sets the number of pairs to link for MethodLargestGroups.
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithTopGroups sets how many of the largest groups are multiplied.
func WithTopGroups(n int) Option {
	return func(o *Options) { o.TopGroups = n }
}

// WithStrict toggles ErrTooFewGroups for MethodLargestGroups.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithWorkers sets the number of goroutines used for distance enumeration.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns:
//
//	– Method    = MethodLargestGroups
//	– K         = DefaultK (1000)
//	– TopGroups = DefaultTopGroups (3)
//	– Strict    = false
//	– Workers   = 1 (sequential).
func DefaultOptions() Options {
	return Options{
		Method:    MethodLargestGroups,
		K:         DefaultK,
		TopGroups: DefaultTopGroups,
		Workers:   1,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// GroupsResult is the outcome of MethodLargestGroups.
type GroupsResult struct {
	// Product of the TopGroups largest group sizes (or of all groups when
	// fewer exist).
	Product int
	// Sizes holds every group size, largest first.
	Sizes []int
	// Links counts the ranked pairs that actually merged two groups.
	Links int
}

// ConnectResult is the outcome of MethodConnectAll.
type ConnectResult struct {
	// Last is the pair whose union connected every point.
	Last pairrank.Pair
	// Value is X(points[Last.A]) * X(points[Last.B]).
	Value float64
	// Edges are the n-1 merging pairs in the order they were accepted;
	// together they form a minimum spanning tree.
	Edges []pairrank.Pair
	// Examined counts ranked pairs visited, merging or not.
	Examined int
}

// Result is the policy-independent outcome returned by Compute. Exactly one
// of Groups and Connect is set, matching Method.
type Result struct {
	Method  Method
	Value   float64
	Groups  *GroupsResult
	Connect *ConnectResult
}
