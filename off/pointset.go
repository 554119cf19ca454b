// SPDX-License-Identifier: MIT

package off

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/point"
)

// Transform is an E8 element followed by a D8 element.
type Transform struct {
	E e8.Matrix
	D d8.D8
}

// Apply moves p by t.E and then by t.D.
func (t Transform) Apply(p point.Point) point.Point {
	return point.New(t.D.Apply(t.E.Apply(p.Vec())))
}

type pointSetEntry struct {
	orbit point.Orbit
	e     e8.Matrix
	// fix sends the sample point back to the orbit representative.
	fix d8.D8
}

// PointSet flattens a list of D8 orbits into one dense index space: the
// members of the first orbit take indices [0, size), the next orbit
// continues from there, and so on.
type PointSet struct {
	entries []pointSetEntry
	offsets map[point.Orbit]uint64
	n       uint64
}

// NewPointSet indexes the orbits of samples in the given order. A repeated
// orbit is indexed once.
func NewPointSet(samples []e8.OrbitSample) *PointSet {
	ps := &PointSet{
		entries: make([]pointSetEntry, 0, len(samples)),
		offsets: make(map[point.Orbit]uint64, len(samples)),
	}
	for _, s := range samples {
		orb := s.Point.Orbit
		if _, dup := ps.offsets[orb]; dup {
			continue
		}
		ps.entries = append(ps.entries, pointSetEntry{orbit: orb, e: s.Transform, fix: s.Point.D8.Inverse()})
		ps.offsets[orb] = ps.n
		ps.n += orb.Size()
	}
	return ps
}

// Len returns the total number of points.
func (ps *PointSet) Len() uint64 { return ps.n }

// Orbits returns the number of D8 orbits.
func (ps *PointSet) Orbits() int { return len(ps.entries) }

// Index returns the flat index of p.
func (ps *PointSet) Index(p point.Point) (uint64, error) {
	off, ok := ps.offsets[p.Orbit]
	if !ok {
		return 0, fmt.Errorf("Index(%v): %w", p.Vec(), ErrUnknownOrbit)
	}
	return off + p.Index(), nil
}

// All yields every point in index order together with a Transform that
// carries the seed of the point's orbit sample onto it.
func (ps *PointSet) All() iter.Seq2[point.Point, Transform] {
	return func(yield func(point.Point, Transform) bool) {
		for _, e := range ps.entries {
			for p := range e.orbit.All() {
				if !yield(p, Transform{E: e.e, D: e.fix.Compose(p.D8)}) {
					return
				}
			}
		}
	}
}

// Representatives yields one representative per orbit, in index order.
func (ps *PointSet) Representatives() iter.Seq[point.Orbit] {
	return func(yield func(point.Orbit) bool) {
		for _, e := range ps.entries {
			if !yield(e.orbit) {
				return
			}
		}
	}
}
