// SPDX-License-Identifier: MIT

package e8

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// DefaultMaxDraws bounds the randomized enumerator. The smallest D8 orbits
// of the largest polytopes are hit with probability near 1e-7 per draw, so
// the cap leaves a wide margin.
const DefaultMaxDraws = 1 << 26

// Option configures VertexOrbits via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// enumeration starts.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Rand drives the sampler. Nil means a time-seeded source per call.
	Rand *rand.Rand

	// Sampler produces group elements for the randomized search.
	Sampler Sampler

	// MaxDraws caps the number of sampled elements.
	MaxDraws int

	// Exact selects the deterministic coset traversal instead of sampling.
	Exact bool

	// Logger receives debug-level progress records.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a time-seeded random source
//   - ProductReplacement with DefaultRounds
//   - DefaultMaxDraws
//   - randomized search
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Sampler:  ProductReplacement{Rounds: DefaultRounds},
		MaxDraws: DefaultMaxDraws,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand uses rng for sampling. A nil rng is an option violation.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.Rand = rng
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithSampler replaces the group sampler.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil Sampler", ErrOptionViolation)
			return
		}
		o.Sampler = s
	}
}

// WithMaxDraws changes the draw cap.
//
//	n > 0: at most n draws
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxDraws(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxDraws must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDraws = n
	}
}

// WithExactTraversal switches to the deterministic breadth-first walk over
// D8 orbits.
func WithExactTraversal() Option {
	return func(o *Options) { o.Exact = true }
}

// WithLogger routes progress records to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
