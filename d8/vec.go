// SPDX-License-Identifier: MIT

package d8

// Dim is the dimension of the space every vector, permutation and mirror
// lives in.
const Dim = 8

// Vec8 is an integer row vector in 8 dimensions.
type Vec8 [Dim]int32

// Dot returns the Euclidean inner product of v and w.
func (v Vec8) Dot(w Vec8) int32 {
	var s int32
	for i := range v {
		s += v[i] * w[i]
	}
	return s
}

// Add returns v + w.
func (v Vec8) Add(w Vec8) Vec8 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Max returns the largest coordinate of v.
func (v Vec8) Max() int32 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
