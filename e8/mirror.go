// SPDX-License-Identifier: MIT

package e8

import (
	"fmt"

	"github.com/katalvlaran/e8poly/d8"
)

// Mirror names one of the eight simple reflections of E8.
type Mirror uint8

// The eight mirrors, in bit order of MirrorSet.
const (
	A0 Mirror = iota
	A1
	A2
	A3
	B0
	B1
	C
	M
)

// NumMirrors is the rank of E8.
const NumMirrors = 8

// Mirrors lists every mirror in bit order.
var Mirrors = [NumMirrors]Mirror{A0, A1, A2, A3, B0, B1, C, M}

var mirrorNames = [NumMirrors]string{"A0", "A1", "A2", "A3", "B0", "B1", "C", "M"}

// Reflection poles, squared norm 8.
var poles = [NumMirrors]d8.Vec8{
	A0: {0, 0, 0, 0, 0, 2, -2, 0},
	A1: {0, 0, 0, 0, 2, -2, 0, 0},
	A2: {0, 0, 0, 2, -2, 0, 0, 0},
	A3: {0, 0, 2, -2, 0, 0, 0, 0},
	B0: {1, 1, 1, 1, 1, 1, 1, 1},
	B1: {-2, -2, 0, 0, 0, 0, 0, 0},
	C:  {2, -2, 0, 0, 0, 0, 0, 0},
	M:  {0, 2, -2, 0, 0, 0, 0, 0},
}

var mirrorMatrices = func() (ms [NumMirrors]Matrix) {
	for i, p := range poles {
		ms[i] = Reflection(p)
	}
	return ms
}()

// ParseMirror resolves a mirror by name.
func ParseMirror(name string) (Mirror, error) {
	for i, n := range mirrorNames {
		if n == name {
			return Mirror(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMirror(%q): %w", name, ErrUnknownMirror)
}

// String returns the mirror name.
func (m Mirror) String() string {
	if int(m) < NumMirrors {
		return mirrorNames[m]
	}
	return fmt.Sprintf("Mirror(%d)", uint8(m))
}

// Pole returns the integer normal of the mirror.
func (m Mirror) Pole() d8.Vec8 { return poles[m] }

// Matrix returns the reflection through m, scaled by 4: 4·I − poleᵀ·pole.
func (m Mirror) Matrix() Matrix { return mirrorMatrices[m] }

// Set returns the singleton MirrorSet {m}.
func (m Mirror) Set() MirrorSet { return MirrorSet(1) << m }

// Link returns the order of the product of the two reflections, read off the
// pole inner product: 8 (the same mirror) gives 1, 0 gives 2 (commuting,
// no diagram edge), −4 gives 3 (a diagram edge), anything else gives 4.
func (m Mirror) Link(o Mirror) int {
	switch m.Pole().Dot(o.Pole()) {
	case 8:
		return 1
	case 0:
		return 2
	case -4:
		return 3
	}
	return 4
}
