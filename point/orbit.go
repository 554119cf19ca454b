// SPDX-License-Identifier: MIT

package point

import (
	"cmp"
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/katalvlaran/e8poly/combs"
	"github.com/katalvlaran/e8poly/d8"
)

// Orbit identifies a D8 orbit by its sorted non-negative representative and
// the product of the original coordinate signs. Sign is 0 whenever Rep
// contains a zero, ±1 otherwise.
type Orbit struct {
	Rep  d8.Vec8
	Sign int32
}

// run is one maximal block of equal values in Rep: it ends at sorted index
// n-1, has length k and card = C(n, k) placements.
type run struct {
	n, k int
	card uint64
}

func (o Orbit) layout() (runs [d8.Dim]run, nruns, signs int) {
	k := 1
	for i := 0; i < d8.Dim; i++ {
		if i+1 < d8.Dim && o.Rep[i+1] == o.Rep[i] {
			k++
		} else {
			runs[nruns] = run{n: i + 1, k: k, card: uint64(combs.Len(i+1, k))}
			nruns++
			k = 1
		}
		if o.Rep[i] != 0 && i != 0 {
			signs++
		}
	}
	return runs, nruns, signs
}

// Size returns the number of distinct vectors in the orbit.
func (o Orbit) Size() uint64 {
	runs, nruns, signs := o.layout()
	size := uint64(1) << signs
	for _, r := range runs[:nruns] {
		size *= r.card
	}
	return size
}

// Vec returns the representative with the orbit sign folded into the first
// coordinate; it is the vector of o's member with index 0.
func (o Orbit) Vec() d8.Vec8 {
	v := o.Rep
	v[0] *= o.Sign
	return v
}

// Member returns the orbit member with the given index, the inverse of
// Point.Index.
func (o Orbit) Member(i uint64) (Point, error) {
	if size := o.Size(); i >= size {
		return Point{}, fmt.Errorf("Member(%d) of orbit %v (size %d): %w", i, o.Rep, size, ErrIndexOutOfRange)
	}
	return o.member(i), nil
}

// All yields every member of o in index order.
func (o Orbit) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := o.Size()
		for i := uint64(0); i < n; i++ {
			if !yield(o.member(i)) {
				return
			}
		}
	}
}

func (o Orbit) member(i uint64) Point {
	runs, nruns, signs := o.layout()
	s := uint8(i & (1<<signs - 1))
	comb := i >> signs

	// Later runs are the low digits and pick their slots first; each run
	// then chooses among the slots still free, high mask bit = first free slot.
	var slots d8.D8
	var filled [d8.Dim]bool
	for r := nruns - 1; r >= 0; r-- {
		rn := runs[r]
		mask := combs.At(rn.n, rn.k, int(comb%rn.card))
		comb /= rn.card
		b, j := 0, 0
		for slot := 0; slot < d8.Dim; slot++ {
			if filled[slot] {
				continue
			}
			if mask>>(rn.n-1-b)&1 == 1 {
				slots[slot] = d8.AxSign(rn.n - rn.k + j)
				filled[slot] = true
				j++
			}
			b++
		}
	}

	odd := bits.OnesCount8(s)%2 == 1
	for slot, a := range slots {
		ax := a.Axis()
		if s>>(7-ax)&1 == 1 || (ax == 0 && odd) {
			slots[slot] = a.Flip()
		}
	}
	return Point{Orbit: o, D8: slots}
}

// Compare orders orbits by representative, then by sign.
func Compare(a, b Orbit) int {
	if c := slices.Compare(a.Rep[:], b.Rep[:]); c != 0 {
		return c
	}
	return cmp.Compare(a.Sign, b.Sign)
}
