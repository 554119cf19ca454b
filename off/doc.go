// SPDX-License-Identifier: MIT

// Package off builds the face lattice of a Wythoff polytope of E8 and
// writes it in the 8OFF mesh format.
//
// What
//
//   - FaceTypes / FaceCenter: the mirror sets describing each class of face
//     and the mirror set whose vertex orbit gives that class's centers.
//   - PointSet: a flat index over a list of D8 orbits. Vertices and the
//     centers of every k-face live in one PointSet per dimension.
//   - Mesh: the in-memory lattice; Build enumerates it, WriteTo serializes it.
//   - FVector and EstimateSize: closed-form face counts and a size estimate.
//
// Format
//
//	8OFF
//	V F2 F1 F3 F4 F5 F6 F7
//
//	# Vertices
//	x0 x1 x2 x3 x4 x5 x6 x7
//
//	# Faces
//	n i1 ... in            (indices into the vertices)
//
//	# 3-faces
//	n j1 ... jn            (indices into the 2-faces)
//	...                    (# 4-faces to # 7-faces)
//
// Each count on the second line is followed by a single space. Edges are
// counted but never listed.
//
// Determinism
//
//	Face types are visited in ascending bit order and faces in point.Compare
//	order of their centers' D8 orbits. The transform that carries a face
//	type onto a face is only fixed up to the face's stabilizer, so each
//	record is normalized: polygons start at their smallest vertex index and
//	run towards the smaller neighbour, and k-face indices are sorted. The
//	bytes depend only on the active mirrors, not on the random source or
//	on WithExactTraversal.
package off
