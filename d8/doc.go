// SPDX-License-Identifier: MIT

// Package d8 implements the rotation subgroup of the 8-dimensional
// hyperoctahedral group: signed permutations of eight axes with an even
// number of sign flips (the Weyl group of D8, order 2^7·8! = 5160960).
//
// What
//
//   - AxSign: an axis index 0..7 packed with a sign bit.
//   - D8: an [8]AxSign; output position i reads input axis p[i].Axis()
//     multiplied by p[i].Sign().
//   - Vec8: the length-8 integer row vector the group acts on.
//
// Operations
//
//   - Identity, Inverse, Compose, Apply.
//   - New validates that the axes form a bijection and that the number of
//     negative entries is even; anything else is rejected with
//     ErrInvalidPermutation or ErrOddSigns. Elements of the full
//     hyperoctahedral group are never silently accepted.
//
// Action convention
//
//	Vectors are rows and the group acts on the right:
//	    p.Apply(v) == v·p,   p.Compose(q).Apply(v) == q.Apply(p.Apply(v)).
//
// All types are small comparable values and may be used as map keys.
package d8
