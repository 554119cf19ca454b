// SPDX-License-Identifier: MIT

package e8

import (
	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/point"
)

// Row m is the vertex contribution of mirror m: a vector fixed by every
// other mirror and moved by m alone.
var vertexBasis = [NumMirrors]d8.Vec8{
	A0: {0, 0, 0, 0, 0, 0, -2, 2},
	A1: {0, 0, 0, 0, 0, -2, -2, 4},
	A2: {0, 0, 0, 0, -2, -2, -2, 6},
	A3: {0, 0, 0, -2, -2, -2, -2, 8},
	B0: {0, 0, 0, 0, 0, 0, 0, 4},
	B1: {-1, -1, -1, -1, -1, -1, -1, 7},
	C:  {1, -1, -1, -1, -1, -1, -1, 5},
	M:  {0, 0, -2, -2, -2, -2, -2, 10},
}

// Vertex returns the seed vertex of the uniform polytope whose active
// mirrors are s: the sum of the basis rows of the members of s. It is fixed
// by every mirror outside s and moved by every mirror inside it.
func (s MirrorSet) Vertex() point.Point {
	var v d8.Vec8
	for _, m := range s.Mirrors() {
		v = v.Add(vertexBasis[m])
	}
	return point.New(v)
}

// VertexCount returns the size of the E8 orbit of s.Vertex(), i.e. the
// index of the stabilizer generated by the inactive mirrors.
func (s MirrorSet) VertexCount() uint64 {
	return GroupOrder / s.Complement().Order()
}
