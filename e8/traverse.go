// SPDX-License-Identifier: MIT

package e8

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/e8poly/closure"
	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/point"
)

// MaxOrbits is the number of D8 cosets in E8, 696729600 / (2^7 · 8!).
const MaxOrbits = 135

// halfRoots are the reflections through (±1)^8 with an even number of minus
// signs, one per ± pair. Together with D8 they generate E8, so they connect
// every D8 orbit of an E8 orbit.
var halfRoots = func() []Matrix {
	out := make([]Matrix, 0, 64)
	for mask := 0; mask < 128; mask++ {
		var p d8.Vec8
		minus := 0
		p[0] = 1
		for i := 1; i < d8.Dim; i++ {
			p[i] = 1
			if mask>>(i-1)&1 == 1 {
				p[i] = -1
				minus++
			}
		}
		if minus%2 == 0 {
			out = append(out, Reflection(p))
		}
	}
	return out
}()

// traverseOrbits explores the D8 orbits reachable from seed breadth first.
// Each discovered orbit keeps the first sample point that reached it and
// the product of reflections leading there.
func traverseOrbits(seed point.Point, target uint64, o Options) ([]OrbitSample, error) {
	found := map[point.Orbit]OrbitSample{
		seed.Orbit: {Point: seed, Transform: Identity()},
	}
	next := func(orb point.Orbit) []point.Orbit {
		cur := found[orb]
		out := make([]point.Orbit, 0, len(halfRoots))
		for _, r := range halfRoots {
			p := r.Act(cur.Point)
			if _, ok := found[p.Orbit]; !ok {
				found[p.Orbit] = OrbitSample{Point: p, Transform: cur.Transform.Mul(r)}
			}
			out = append(out, p.Orbit)
		}
		return out
	}

	res, err := closure.BFS([]point.Orbit{seed.Orbit}, next,
		closure.WithContext(o.Ctx),
		closure.WithMaxVisits(MaxOrbits),
	)
	if errors.Is(err, closure.ErrLimitExceeded) {
		return nil, fmt.Errorf("%w: more than %d D8 orbits", ErrArithmeticInvariant, MaxOrbits)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OrbitSample, 0, res.Len())
	var total uint64
	for _, orb := range res.Order {
		out = append(out, found[orb])
		total += orb.Size()
	}
	if total != target {
		return nil, fmt.Errorf("%w: traversal covered %d vertices, expected %d",
			ErrArithmeticInvariant, total, target)
	}
	return out, nil
}
