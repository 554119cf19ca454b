// SPDX-License-Identifier: MIT

package e8

// GroupOrder is |E8|.
const GroupOrder uint64 = 696729600

const (
	armA = MirrorSet(1)<<A0 | MirrorSet(1)<<A1 | MirrorSet(1)<<A2 | MirrorSet(1)<<A3
	armB = MirrorSet(1)<<B0 | MirrorSet(1)<<B1
	armC = MirrorSet(1) << C
)

// armEntry lists the pieces of one arm that are cut off from M, plus the
// part of the arm that stays attached to M when M itself is present.
type armEntry struct {
	parts  []MirrorSet
	merged MirrorSet
}

var (
	a0, a1, a2, a3 = A0.Set(), A1.Set(), A2.Set(), A3.Set()
	b0, b1         = B0.Set(), B1.Set()
)

// Keyed by a0 | a1<<1 | a2<<2 | a3<<3 | m<<4.
var armATable = [32]armEntry{
	{},
	{parts: []MirrorSet{a0}},
	{parts: []MirrorSet{a1}},
	{parts: []MirrorSet{a0 | a1}},
	{parts: []MirrorSet{a2}},
	{parts: []MirrorSet{a0, a2}},
	{parts: []MirrorSet{a1 | a2}},
	{parts: []MirrorSet{a0 | a1 | a2}},
	{parts: []MirrorSet{a3}},
	{parts: []MirrorSet{a0, a3}},
	{parts: []MirrorSet{a1, a3}},
	{parts: []MirrorSet{a0 | a1, a3}},
	{parts: []MirrorSet{a2 | a3}},
	{parts: []MirrorSet{a0, a2 | a3}},
	{parts: []MirrorSet{a1 | a2 | a3}},
	{parts: []MirrorSet{a0 | a1 | a2 | a3}},
	// M present, A3 absent: nothing touches M.
	{},
	{parts: []MirrorSet{a0}},
	{parts: []MirrorSet{a1}},
	{parts: []MirrorSet{a0 | a1}},
	{parts: []MirrorSet{a2}},
	{parts: []MirrorSet{a0, a2}},
	{parts: []MirrorSet{a1 | a2}},
	{parts: []MirrorSet{a0 | a1 | a2}},
	// M and A3 present.
	{merged: a3},
	{parts: []MirrorSet{a0}, merged: a3},
	{parts: []MirrorSet{a1}, merged: a3},
	{parts: []MirrorSet{a0 | a1}, merged: a3},
	{merged: a2 | a3},
	{parts: []MirrorSet{a0}, merged: a2 | a3},
	{merged: a1 | a2 | a3},
	{merged: a0 | a1 | a2 | a3},
}

// Keyed by b0 | b1<<1 | m<<2.
var armBTable = [8]armEntry{
	{},
	{parts: []MirrorSet{b0}},
	{parts: []MirrorSet{b1}},
	{parts: []MirrorSet{b0 | b1}},
	{},
	{parts: []MirrorSet{b0}},
	{merged: b1},
	{merged: b0 | b1},
}

// Keyed by c | m<<1.
var armCTable = [4]armEntry{
	{},
	{parts: []MirrorSet{armC}},
	{},
	{merged: armC},
}

// Components splits s into the connected components of its Coxeter
// subdiagram. Detached pieces of the A, B and C arms come first, in that
// order; the component containing M, if any, is last.
func (s MirrorSet) Components() []MirrorSet {
	m := s.Has(M)
	var mbit uint8
	if m {
		mbit = 1
	}
	a := armATable[uint8(s&armA)|mbit<<4]
	b := armBTable[uint8(s&armB)>>B0|mbit<<2]
	c := armCTable[uint8(s&armC)>>C|mbit<<1]

	out := make([]MirrorSet, 0, len(a.parts)+len(b.parts)+len(c.parts)+1)
	out = append(out, a.parts...)
	out = append(out, b.parts...)
	out = append(out, c.parts...)
	if m {
		out = append(out, M.Set().Union(a.merged).Union(b.merged).Union(c.merged))
	}
	return out
}

// Orders of the branched components D_n (no B0) and E_n (with B0),
// indexed by the length of the A part minus one.
var (
	branchedD = [4]uint64{192, 1920, 23040, 322560}
	branchedE = [4]uint64{1920, 51840, 2903040, 696729600}
)

// componentOrder is the order of the group generated by one connected
// component. A path of n mirrors is A_n with order (n+1)!; a component
// holding A3, B1 and C is branched at M.
func componentOrder(c MirrorSet) uint64 {
	if c.Has(A3) && c.Has(B1) && c.Has(C) {
		arm := c.Intersect(armA).Size()
		if c.Has(B0) {
			return branchedE[arm-1]
		}
		return branchedD[arm-1]
	}
	return factorial(c.Size() + 1)
}

// Order returns the order of the subgroup generated by s.
func (s MirrorSet) Order() uint64 {
	n := uint64(1)
	for _, c := range s.Components() {
		n *= componentOrder(c)
	}
	return n
}

func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}
