// SPDX-License-Identifier: MIT

package off

import "errors"

var (
	// ErrUnknownOrbit is returned when a point's orbit is not part of a
	// PointSet. Inside the mesh builder it means the face arithmetic is
	// inconsistent.
	ErrUnknownOrbit = errors.New("off: point outside point set")

	// ErrFaceShape is returned when a 2-face type does not hold exactly
	// two mirrors.
	ErrFaceShape = errors.New("off: polygon face type must hold two mirrors")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("off: invalid option supplied")
)
