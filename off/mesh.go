// SPDX-License-Identifier: MIT

package off

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/e8poly/closure"
	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/point"
)

// Mesh is the face lattice of one uniform polytope, held in memory until
// it is written.
type Mesh struct {
	active    e8.MirrorSet
	faceTypes [MaxDim + 1][]e8.MirrorSet
	// points[k] indexes the centers of all k-faces; points[0] are the vertices.
	points  [MaxDim + 1]*PointSet
	centers map[e8.MirrorSet][]e8.OrbitSample
	opts    Options
}

// Build enumerates the center orbits of every face type of the polytope
// with the given active mirrors.
func Build(active e8.MirrorSet, opts ...Option) (*Mesh, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		active:    active,
		faceTypes: FaceTypes(active),
		centers:   make(map[e8.MirrorSet][]e8.OrbitSample),
		opts:      o,
	}
	for k, types := range m.faceTypes {
		var samples []e8.OrbitSample
		for _, ft := range types {
			cs, err := m.centerOrbits(ft)
			if err != nil {
				return nil, fmt.Errorf("Build(%v): %d-face %v: %w", active, k, ft, err)
			}
			samples = append(samples, cs...)
		}
		m.points[k] = NewPointSet(samples)
		o.Logger.Debug("face centers",
			zap.Int("dim", k),
			zap.Int("types", len(types)),
			zap.Int("orbits", m.points[k].Orbits()),
			zap.Uint64("faces", m.points[k].Len()),
		)
	}
	return m, nil
}

// centerOrbits returns the orbit samples of the center of face type ft,
// enumerating them on first use.
func (m *Mesh) centerOrbits(ft e8.MirrorSet) ([]e8.OrbitSample, error) {
	c := FaceCenter(m.active, ft)
	if cs, ok := m.centers[c]; ok {
		return cs, nil
	}
	cs, err := c.VertexOrbits(m.opts.enumOptions()...)
	if err != nil {
		return nil, err
	}
	m.centers[c] = cs
	return cs, nil
}

// Active returns the active mirrors.
func (m *Mesh) Active() e8.MirrorSet { return m.active }

// FaceTypes returns the face types grouped by dimension.
func (m *Mesh) FaceTypes() [MaxDim + 1][]e8.MirrorSet { return m.faceTypes }

// Counts returns the number of k-faces for every k. It agrees with FVector.
func (m *Mesh) Counts() [MaxDim + 1]uint64 {
	var c [MaxDim + 1]uint64
	for k, ps := range m.points {
		c[k] = ps.Len()
	}
	return c
}

// Points returns the index space of the k-face centers.
func (m *Mesh) Points(k int) *PointSet { return m.points[k] }

// polygon returns the vertex cycle of the canonical 2-face of type face.
func (m *Mesh) polygon(face e8.MirrorSet) ([]point.Point, error) {
	ms := face.Mirrors()
	if len(ms) != 2 {
		return nil, fmt.Errorf("polygon(%v): %w", face, ErrFaceShape)
	}
	r1, r2 := ms[0].Matrix(), ms[1].Matrix()
	v := m.active.Vertex()
	walk := func(steps ...e8.Matrix) point.Point {
		p := v
		for _, s := range steps {
			p = s.Act(p)
		}
		return p
	}
	switch {
	case ms[0].Link(ms[1]) == 2:
		return []point.Point{v, walk(r1), walk(r2, r1), walk(r2)}, nil
	case m.active.Contains(face):
		return []point.Point{v, walk(r1), walk(r2, r1), walk(r1, r2, r1), walk(r1, r2), walk(r2)}, nil
	}
	return []point.Point{v, walk(r2, r1), walk(r1, r2)}, nil
}

// subfaces returns the centers of the (k−1)-faces of the canonical k-face
// of type face: the closure of every contained (k−1)-face center under
// the mirrors of face.
func (m *Mesh) subfaces(face e8.MirrorSet, k int) ([]point.Point, error) {
	var starts []point.Point
	for _, st := range m.faceTypes[k-1] {
		if face.Contains(st) {
			starts = append(starts, FaceCenter(m.active, st).Vertex())
		}
	}
	mirrors := face.Mirrors()
	res, err := closure.BFS(starts, func(p point.Point) []point.Point {
		out := make([]point.Point, len(mirrors))
		for i, mr := range mirrors {
			out[i] = mr.Matrix().Act(p)
		}
		return out
	}, closure.WithContext(m.opts.Ctx))
	if err != nil {
		return nil, fmt.Errorf("subfaces(%v): %w", face, err)
	}
	return res.Order, nil
}
