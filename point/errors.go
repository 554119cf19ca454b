// SPDX-License-Identifier: MIT

package point

import "errors"

// ErrIndexOutOfRange is returned by Orbit.Member for indices outside
// [0, Orbit.Size()).
var ErrIndexOutOfRange = errors.New("point: orbit index out of range")
