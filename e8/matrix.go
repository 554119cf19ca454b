// SPDX-License-Identifier: MIT

package e8

import (
	"github.com/katalvlaran/e8poly/d8"
	"github.com/katalvlaran/e8poly/point"
)

// Scale is the factor every Matrix carries so that reflections through
// poles of squared norm 8 have integer entries.
const Scale = 4

// Matrix is an E8 group element multiplied by Scale. It acts on row
// vectors from the right.
type Matrix [d8.Dim][d8.Dim]int32

// Identity returns Scale·I.
func Identity() Matrix {
	var m Matrix
	for i := range m {
		m[i][i] = Scale
	}
	return m
}

// Reflection returns 4·I − poleᵀ·pole, the scaled reflection through a
// pole of squared norm 8.
func Reflection(pole d8.Vec8) Matrix {
	m := Identity()
	for i := range m {
		for j := range m[i] {
			m[i][j] -= pole[i] * pole[j]
		}
	}
	return m
}

// Mul returns the scaled product a·b. Applying the result equals applying a
// then b.
func (a Matrix) Mul(b Matrix) Matrix {
	var r Matrix
	for i := range r {
		for j := range r[i] {
			var s int32
			for k := 0; k < d8.Dim; k++ {
				s += a[i][k] * b[k][j]
			}
			r[i][j] = s / Scale
		}
	}
	return r
}

// Inverse returns the transpose; group elements are orthogonal.
func (a Matrix) Inverse() Matrix {
	var r Matrix
	for i := range r {
		for j := range r[i] {
			r[i][j] = a[j][i]
		}
	}
	return r
}

// Apply returns v·a / Scale.
func (a Matrix) Apply(v d8.Vec8) d8.Vec8 {
	var out d8.Vec8
	for j := range out {
		var s int32
		for i := 0; i < d8.Dim; i++ {
			s += v[i] * a[i][j]
		}
		out[j] = s / Scale
	}
	return out
}

// Act moves p by a and canonicalizes the result.
func (a Matrix) Act(p point.Point) point.Point {
	return point.New(a.Apply(p.Vec()))
}

// Orthogonal reports whether a·aᵀ equals Scale²·I.
func (a Matrix) Orthogonal() bool {
	for i := range a {
		for j := range a {
			var s int32
			for k := 0; k < d8.Dim; k++ {
				s += a[i][k] * a[j][k]
			}
			want := int32(0)
			if i == j {
				want = Scale * Scale
			}
			if s != want {
				return false
			}
		}
	}
	return true
}
