// SPDX-License-Identifier: MIT

package off

import "github.com/katalvlaran/e8poly/e8"

// MaxDim is the dimension of the polytope, one per mirror.
const MaxDim = e8.NumMirrors

// FaceTypes returns every mirror set whose diagram components all meet
// active, grouped by size. Within a size the sets are in ascending bit
// order. Index k holds the types of the k-dimensional faces.
func FaceTypes(active e8.MirrorSet) [MaxDim + 1][]e8.MirrorSet {
	var out [MaxDim + 1][]e8.MirrorSet
	for s := range e8.Sets() {
		legal := true
		for _, c := range s.Components() {
			if c.Intersect(active).IsEmpty() {
				legal = false
				break
			}
		}
		if legal {
			out[s.Size()] = append(out[s.Size()], s)
		}
	}
	return out
}

// FaceCenter returns the mirror set whose vertex is the center of the
// canonical face of type face: every mirror outside face that is either
// active or joined by a diagram edge to a mirror of face.
func FaceCenter(active, face e8.MirrorSet) e8.MirrorSet {
	var c e8.MirrorSet
	for _, m := range e8.Mirrors {
		if face.Has(m) {
			continue
		}
		if active.Has(m) || linked(face, m) {
			c = c.With(m)
		}
	}
	return c
}

func linked(face e8.MirrorSet, m e8.Mirror) bool {
	for _, f := range face.Mirrors() {
		if f.Link(m) == 3 {
			return true
		}
	}
	return false
}

// FVector returns the number of k-faces for k = 0..8 from group orders
// alone, without enumerating any orbit.
func FVector(active e8.MirrorSet) [MaxDim + 1]uint64 {
	var f [MaxDim + 1]uint64
	for k, types := range FaceTypes(active) {
		for _, ft := range types {
			f[k] += FaceCenter(active, ft).VertexCount()
		}
	}
	return f
}
