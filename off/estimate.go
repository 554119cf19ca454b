// SPDX-License-Identifier: MIT

package off

import (
	"strconv"

	"github.com/katalvlaran/e8poly/e8"
)

// EstimateSize builds the mesh of active and returns EstimateSize of it.
func EstimateSize(active e8.MirrorSet, opts ...Option) (uint64, error) {
	m, err := Build(active, opts...)
	if err != nil {
		return 0, err
	}
	return m.EstimateSize()
}

// EstimateSize approximates the 8OFF size in bytes without writing it.
// Vertex lines are charged eight times the widest coordinate of their
// orbit plus separators; each k-face record is charged its part count
// and one separator plus the widest possible index per part. The header
// and section titles are ignored.
func (m *Mesh) EstimateSize() (uint64, error) {
	var size uint64
	for o := range m.points[0].Representatives() {
		size += (8*digits(uint64(o.Rep.Max())) + 12) * o.Size()
	}
	for k := 2; k < MaxDim; k++ {
		idxWidth := digits(m.points[k-1].Len())
		for _, ft := range m.faceTypes[k] {
			subs, err := m.subfaces(ft, k)
			if err != nil {
				return 0, err
			}
			n := uint64(len(subs))
			size += (digits(n) + n*(1+idxWidth)) * FaceCenter(m.active, ft).VertexCount()
		}
	}
	return size, nil
}

func digits(x uint64) uint64 {
	return uint64(len(strconv.FormatUint(x, 10)))
}
