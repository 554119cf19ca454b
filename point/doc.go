// SPDX-License-Identifier: MIT

// Package point maps integer vectors to canonical D8 orbit points and
// indexes orbit members densely.
//
// What
//
//   - Orbit: the sorted, non-negative representative of a D8 orbit plus
//     the product of the coordinate signs (0 when a coordinate is zero).
//   - Point: an Orbit together with the D8 element that carries the
//     representative onto the original vector.
//   - New canonicalizes, Point.Vec inverts it exactly.
//   - Orbit.Size, Orbit.All, Orbit.Member and Point.Index form a dense
//     bijection between the orbit and [0, Size).
//
// Why
//
//	The mesh writer needs a single integer per vertex and per face center.
//	Orbits of the E8 group split into at most 135 D8 orbits, each of which
//	is indexed here without storing its members.
//
// Index layout
//
//	The representative is cut into maximal runs of equal values. Each run
//	contributes one mixed-radix digit: the rank of the bit mask marking
//	which of the still-free output slots it occupies. The first run is the
//	most significant digit. Below those digits sit one sign bit per non-zero
//	coordinate other than the leading one; the leading coordinate's sign is
//	implied by the orbit sign (a leading zero is never flipped).
//
// Determinism
//
//	Orbit.All yields members in index order, so
//	    for i, p := range o.All() { p.Index() == i }.
package point
