// SPDX-License-Identifier: MIT

package e8

import "errors"

var (
	// ErrUnknownMirror is returned when a mirror name is not one of
	// A0, A1, A2, A3, B0, B1, C, M.
	ErrUnknownMirror = errors.New("e8: unknown mirror")

	// ErrArithmeticInvariant reports that group-order arithmetic and the
	// observed enumeration disagree: the target vertex count was overshot,
	// never reached within the draw cap, or the exact traversal covered a
	// different number of vertices. It is an internal-consistency failure and
	// is never retried.
	ErrArithmeticInvariant = errors.New("e8: vertex count invariant violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("e8: invalid option supplied")
)
