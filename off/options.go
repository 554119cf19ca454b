// SPDX-License-Identifier: MIT

package off

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/e8poly/e8"
)

// Option configures Build, Write and EstimateSize.
type Option func(*Options)

// Options holds the mesh builder parameters.
type Options struct {
	// Ctx allows cancellation between orbit enumerations and closures.
	Ctx context.Context

	// Logger receives per-dimension progress (Debug) and write totals (Info).
	Logger *zap.Logger

	// Enum is passed to every VertexOrbits call, after the builder's own
	// context and logger.
	Enum []e8.Option

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// logger and default enumeration.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
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

// WithLogger routes progress records to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithEnumOptions forwards options to the orbit enumerator, e.g.
// e8.WithExactTraversal() or e8.WithSeed(1).
func WithEnumOptions(opts ...e8.Option) Option {
	return func(o *Options) {
		for _, opt := range opts {
			if opt == nil {
				o.err = fmt.Errorf("%w: nil e8.Option", ErrOptionViolation)
				return
			}
		}
		o.Enum = append(o.Enum, opts...)
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o Options) enumOptions() []e8.Option {
	out := make([]e8.Option, 0, len(o.Enum)+2)
	out = append(out, e8.WithContext(o.Ctx), e8.WithLogger(o.Logger))
	return append(out, o.Enum...)
}
