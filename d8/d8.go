// SPDX-License-Identifier: MIT

package d8

import "fmt"

// AxSign packs an axis index with a sign: non-negative values are +axis,
// the bitwise complement ^axis encodes −axis.
type AxSign int8

// NewAxSign returns axis ax with the sign of s; zero counts as positive.
func NewAxSign(ax int, s int32) AxSign {
	if s >= 0 {
		return AxSign(ax)
	}
	return ^AxSign(ax)
}

// Axis returns the axis index 0..7.
func (a AxSign) Axis() int {
	if a >= 0 {
		return int(a)
	}
	return int(^a)
}

// Sign returns +1 or −1.
func (a AxSign) Sign() int32 {
	if a >= 0 {
		return 1
	}
	return -1
}

// Negative reports whether the sign bit is set.
func (a AxSign) Negative() bool { return a < 0 }

// Flip returns a with the opposite sign.
func (a AxSign) Flip() AxSign { return ^a }

// D8 is an element of the even signed-permutation group.
type D8 [Dim]AxSign

// New validates axs and returns it as a group element.
//
// Errors:
//   - ErrInvalidPermutation if an axis is out of range or repeats.
//   - ErrOddSigns if the number of negative entries is odd.
func New(axs [Dim]AxSign) (D8, error) {
	var seen [Dim]bool
	for i, a := range axs {
		ax := a.Axis()
		if ax >= Dim || seen[ax] {
			return D8{}, fmt.Errorf("New: entry %d (axis %d): %w", i, ax, ErrInvalidPermutation)
		}
		seen[ax] = true
	}
	p := D8(axs)
	if !p.EvenSigns() {
		return D8{}, fmt.Errorf("New: %v: %w", axs, ErrOddSigns)
	}
	return p, nil
}

// MustNew is New for constant tables; it panics on invalid input.
func MustNew(axs [Dim]AxSign) D8 {
	p, err := New(axs)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the neutral element.
func Identity() D8 {
	return D8{0, 1, 2, 3, 4, 5, 6, 7}
}

// Inverse returns p⁻¹, so that p.Compose(p.Inverse()) == Identity().
func (p D8) Inverse() D8 {
	var inv D8
	for i, a := range p {
		inv[a.Axis()] = NewAxSign(i, a.Sign())
	}
	return inv
}

// Compose returns the element that applies p first and q second:
// p.Compose(q).Apply(v) == q.Apply(p.Apply(v)).
func (p D8) Compose(q D8) D8 {
	var r D8
	for i, b := range q {
		a := p[b.Axis()]
		r[i] = NewAxSign(a.Axis(), a.Sign()*b.Sign())
	}
	return r
}

// Apply returns v·p: output coordinate i is v[p[i].Axis()]·p[i].Sign().
func (p D8) Apply(v Vec8) Vec8 {
	var out Vec8
	for i, a := range p {
		out[i] = v[a.Axis()] * a.Sign()
	}
	return out
}

// EvenSigns reports whether p carries an even number of negative entries.
func (p D8) EvenSigns() bool {
	n := 0
	for _, a := range p {
		if a.Negative() {
			n++
		}
	}
	return n%2 == 0
}
