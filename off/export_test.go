// SPDX-License-Identifier: MIT

package off

import (
	"github.com/katalvlaran/e8poly/e8"
	"github.com/katalvlaran/e8poly/point"
)

// NormalizeCycle exposes normalizeCycle to off_test.
var NormalizeCycle = normalizeCycle

// Polygon exposes the canonical vertex cycle of a 2-face type.
func (m *Mesh) Polygon(face e8.MirrorSet) ([]point.Point, error) { return m.polygon(face) }
