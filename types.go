// Package reastar defines configuration options and sentinel errors for
// the Rectangle Expansion A* solver.
package reastar

import (
	"errors"
	"math"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil grid.View was passed to FindPath.
	ErrNilGrid = errors.New("reastar: grid is nil")

	// ErrOutOfBounds indicates that source or target lies outside the grid.
	ErrOutOfBounds = errors.New("reastar: endpoint outside grid boundaries")

	// ErrBlockedEndpoint indicates that source or target is not traversable.
	ErrBlockedEndpoint = errors.New("reastar: endpoint cell is blocked")

	// ErrNoPath indicates the target is unreachable from the source and
	// no finite MaxLength was configured.
	ErrNoPath = errors.New("reastar: no path between source and target")

	// ErrBadMaxLength indicates WithMaxLength was given a non-positive bound.
	ErrBadMaxLength = errors.New("reastar: MaxLength must be positive")
)

// Options configures the behavior of one FindPath call.
//
// MaxLength – soft ceiling on accepted g-values: relaxations whose cost
// would reach or exceed it are ignored. When finite and the target is not
// reached, FindPath returns the best partial path instead of ErrNoPath.
// Default is +Inf (unbounded).
type Options struct {
	MaxLength float64
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithMaxLength caps accepted path costs at limit. Searches that exhaust
// the open queue under a finite limit fall back to the trajectory toward
// the cell with the smallest heuristic-to-target seen so far.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadMaxLength, matching invalid-configuration handling elsewhere in
// the library.
func WithMaxLength(limit float64) Option {
	if limit <= 0 {
		panic(ErrBadMaxLength.Error())
	}
	return func(o *Options) {
		o.MaxLength = limit
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// MaxLength = +Inf (no bound; unreachable targets yield ErrNoPath).
func DefaultOptions() Options {
	return Options{
		MaxLength: math.Inf(1),
	}
}
