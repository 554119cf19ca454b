// SPDX-License-Identifier: MIT

package e8

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/e8poly/point"
)

// ctxCheckEvery is how many draws pass between cancellation checks.
const ctxCheckEvery = 1024

// OrbitSample is one D8 orbit of an E8 orbit together with a group element
// reaching it: Point == Transform.Act(seed), where seed is the vertex the
// enumeration started from.
type OrbitSample struct {
	Point     point.Point
	Transform Matrix
}

// VertexOrbits returns the D8 orbits covering the E8 orbit of s.Vertex(),
// sorted by point.Compare on their orbits. Their sizes sum to
// s.VertexCount().
//
// The default search samples E8 elements until the target count is met;
// WithExactTraversal walks the orbits deterministically instead. Both
// return the same orbit list, but the transforms of the randomized search
// depend on the random source.
func (s MirrorSet) VertexOrbits(opts ...Option) ([]OrbitSample, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	target := s.VertexCount()
	seed := s.Vertex()

	var (
		samples []OrbitSample
		draws   int
	)
	if o.Exact {
		samples, err = traverseOrbits(seed, target, o)
	} else {
		samples, draws, err = sampleOrbits(seed, target, o)
	}
	if err != nil {
		return nil, fmt.Errorf("VertexOrbits(%v): %w", s, err)
	}
	slices.SortFunc(samples, func(a, b OrbitSample) int {
		return point.Compare(a.Point.Orbit, b.Point.Orbit)
	})

	o.Logger.Debug("vertex orbits",
		zap.Stringer("mirrors", s),
		zap.Int("orbits", len(samples)),
		zap.Uint64("vertices", target),
		zap.Int("draws", draws),
		zap.Bool("exact", o.Exact),
	)
	return samples, nil
}

// sampleOrbits applies random E8 elements to seed until the discovered
// orbits cover target vertices.
func sampleOrbits(seed point.Point, target uint64, o Options) ([]OrbitSample, int, error) {
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seen := make(map[point.Orbit]OrbitSample)
	var total uint64
	draw := 0
	for ; total < target; draw++ {
		if draw >= o.MaxDraws {
			return nil, draw, fmt.Errorf("%w: %d of %d vertices after %d draws",
				ErrArithmeticInvariant, total, target, draw)
		}
		if draw%ctxCheckEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return nil, draw, err
			}
		}
		g := o.Sampler.Sample(All, rng)
		p := g.Act(seed)
		if _, ok := seen[p.Orbit]; ok {
			continue
		}
		seen[p.Orbit] = OrbitSample{Point: p, Transform: g}
		total += p.Orbit.Size()
		if total > target {
			return nil, draw, fmt.Errorf("%w: %d vertices found, only %d expected",
				ErrArithmeticInvariant, total, target)
		}
	}

	out := make([]OrbitSample, 0, len(seen))
	for _, smp := range seen {
		out = append(out, smp)
	}
	return out, draw, nil
}
