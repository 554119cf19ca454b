// SPDX-License-Identifier: MIT

package closure

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for closure execution.
var (
	// ErrNilNext is returned when no neighbour function is supplied.
	ErrNilNext = errors.New("closure: neighbour function is nil")

	// ErrLimitExceeded is returned when more than MaxVisits keys are reached.
	ErrLimitExceeded = errors.New("closure: visit limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("closure: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxVisits, if > 0, makes BFS fail with ErrLimitExceeded as soon as
	// more keys than this are discovered.
	MaxVisits int

	err error
}

// DefaultOptions returns Options with a background context and no limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxVisits bounds the number of discovered keys.
//
//	n > 0: fail once more than n keys are found
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// Result holds the outcome of a closure search:
//   - Order: keys in discovery order, starts first.
//   - Depth: distance of each key from the nearest start.
type Result[K comparable] struct {
	Order []K
	Depth map[K]int
}

// Len returns the number of keys reached.
func (r *Result[K]) Len() int { return len(r.Order) }

// Contains reports whether k was reached.
func (r *Result[K]) Contains(k K) bool {
	_, ok := r.Depth[k]
	return ok
}
