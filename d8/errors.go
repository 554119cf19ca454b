// SPDX-License-Identifier: MIT

package d8

import "errors"

var (
	// ErrInvalidPermutation is returned when the axes of a candidate element
	// are out of range or repeat, so they do not form a bijection on 0..7.
	ErrInvalidPermutation = errors.New("d8: axes do not form a permutation")

	// ErrOddSigns is returned when a candidate element has an odd number of
	// negative entries. Such elements belong to the full hyperoctahedral
	// group, not to its rotation subgroup.
	ErrOddSigns = errors.New("d8: odd number of sign flips")
)
