// SPDX-License-Identifier: MIT

package point

import (
	"github.com/katalvlaran/e8poly/combs"
	"github.com/katalvlaran/e8poly/d8"
)

// Point is a vector written as an orbit representative moved by a D8
// element: p.Vec() == p.D8.Apply(p.Orbit.Vec()).
//
// Points built by New are canonical, so two Points are equal exactly when
// their vectors are; Point is therefore safe to use as a map key.
type Point struct {
	Orbit Orbit
	D8    d8.D8
}

// New canonicalizes v. The representative is |v| sorted ascending (stable,
// so equal values keep axis order); the stored permutation sends each
// sorted slot back to its original axis. When v has an odd number of
// negative coordinates the extra flip is put on sorted slot 0, keeping the
// permutation even while Orbit.Sign records the true sign.
func New(v d8.Vec8) Point {
	type entry struct {
		abs int32
		ax  d8.AxSign
	}
	var deco [d8.Dim]entry
	sign, parity := int32(1), int32(1)
	for i, x := range v {
		s := signum(x)
		sign *= s
		if s < 0 {
			parity = -parity
		}
		deco[i] = entry{abs: x * signOrOne(s), ax: d8.NewAxSign(i, s)}
	}
	for i := 1; i < d8.Dim; i++ {
		for j := i; j > 0 && deco[j].abs < deco[j-1].abs; j-- {
			deco[j], deco[j-1] = deco[j-1], deco[j]
		}
	}

	var (
		rep   d8.Vec8
		inner d8.D8
	)
	for j, e := range deco {
		rep[j] = e.abs
		inner[j] = e.ax
	}
	if parity < 0 {
		inner[0] = inner[0].Flip()
	}
	return Point{Orbit: Orbit{Rep: rep, Sign: sign}, D8: inner.Inverse()}
}

// Vec reconstructs the original vector.
func (p Point) Vec() d8.Vec8 {
	return p.D8.Apply(p.Orbit.Vec())
}

// Representative returns the orbit member with index 0.
func (p Point) Representative() Point {
	return Point{Orbit: p.Orbit, D8: d8.Identity()}
}

// Mul moves p by q and canonicalizes the result.
func (p Point) Mul(q d8.D8) Point {
	return New(q.Apply(p.Vec()))
}

// Dot returns the inner product of the two vectors.
func (p Point) Dot(o Point) int32 {
	return p.Vec().Dot(o.Vec())
}

// Index returns the dense rank of p inside its orbit, in [0, Orbit.Size()).
func (p Point) Index() uint64 {
	runs, nruns, signs := p.Orbit.layout()
	var idx uint64
	for _, r := range runs[:nruns] {
		last := r.n - 1
		var mask uint8
		for _, a := range p.D8 {
			ax := a.Axis()
			if ax > last {
				continue
			}
			mask <<= 1
			if ax+r.k > last {
				mask |= 1
			}
		}
		idx = idx*r.card + uint64(combs.Rank(r.n, mask))
	}

	idx <<= signs
	for _, a := range p.D8 {
		ax := a.Axis()
		if ax != 0 && p.Orbit.Rep[ax] != 0 && a.Negative() {
			idx |= 1 << (7 - ax)
		}
	}
	return idx
}

func signum(x int32) int32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func signOrOne(s int32) int32 {
	if s < 0 {
		return -1
	}
	return 1
}
