// SPDX-License-Identifier: MIT

// Package e8poly enumerates the uniform polytopes of the E8 reflection group
// and writes their face lattices as 8OFF meshes.
//
// What is e8poly?
//
//	A small, integer-only toolkit built from the bottom up:
//		• combs:   k-subset masks of up to 8 bits and their ranks
//		• d8:      the even signed-permutation group on 8 axes
//		• point:   canonical D8 orbit points with dense rank/unrank
//		• e8:      mirrors, parabolic subgroups, scaled group matrices,
//		           product-replacement sampling and orbit enumeration
//		• closure: generic breadth-first closure under a neighbour function
//		• off:     face types, face centers, f-vectors and the 8OFF writer
//
// The command cmd/e8poly wires them together:
//
//	e8poly --exact --off 421.off A0
//
// Arithmetic
//
//	Every coordinate is an int32. Group elements are stored multiplied by
//	4, so reflections through poles of squared norm 8 stay integral, and
//	vertices are twice their usual lattice coordinates.
package e8poly
