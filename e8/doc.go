// SPDX-License-Identifier: MIT

// Package e8 models the E8 reflection group through its eight simple mirrors
// and enumerates vertex orbits of the uniform polytopes they generate.
//
// What
//
//   - Mirror: one of the generators A0, A1, A2, A3, B0, B1, C, M, each with an
//     integer pole of squared norm 8.
//   - MirrorSet: a bit set of mirrors, i.e. a parabolic subgroup. Components,
//     Order, Vertex and VertexCount are pure functions of the bits.
//   - Matrix: a group element scaled by 4 so that every entry is an integer.
//   - Sampler: a source of approximately uniform group elements;
//     ProductReplacement is the default.
//   - VertexOrbits: the D8 orbits covering the E8 orbit of a set's vertex.
//
// Coxeter diagram
//
//	A0 ─ A1 ─ A2 ─ A3 ─ M ─ C
//	                    │
//	                    B1 ─ B0
//
// Every mirror of the A chain, the B chain and C meets the junction M; the
// component tables in components.go follow this picture.
//
// Termination
//
//	Enumeration stops when the discovered orbits cover exactly
//	GroupOrder / Complement().Order() vertices. A sampler that cannot reach
//	that count, or arithmetic that predicts the wrong count, surfaces as
//	ErrArithmeticInvariant once the draw cap is exhausted; the loop never
//	runs unbounded.
//
// Concurrency
//
//	Every call owns its seen-set and random source. Options must not share a
//	*rand.Rand between goroutines.
package e8
