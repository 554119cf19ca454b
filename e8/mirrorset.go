// SPDX-License-Identifier: MIT

package e8

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// MirrorSet is a set of mirrors, bit i standing for Mirrors[i].
type MirrorSet uint8

const (
	// Empty is the set with no mirrors.
	Empty MirrorSet = 0
	// All holds every mirror; its group is E8 itself.
	All MirrorSet = 0xff
)

// Of builds a MirrorSet from individual mirrors.
func Of(ms ...Mirror) MirrorSet {
	var s MirrorSet
	for _, m := range ms {
		s |= m.Set()
	}
	return s
}

// ParseMirrorSet resolves a list of mirror names. Duplicates are allowed.
func ParseMirrorSet(names []string) (MirrorSet, error) {
	var s MirrorSet
	for _, n := range names {
		m, err := ParseMirror(n)
		if err != nil {
			return Empty, err
		}
		s |= m.Set()
	}
	return s, nil
}

// Sets yields all 256 mirror sets in ascending order.
func Sets() iter.Seq[MirrorSet] {
	return func(yield func(MirrorSet) bool) {
		for i := 0; i <= int(All); i++ {
			if !yield(MirrorSet(i)) {
				return
			}
		}
	}
}

// Has reports whether m is in s.
func (s MirrorSet) Has(m Mirror) bool { return s&m.Set() != 0 }

// With returns s with m added.
func (s MirrorSet) With(m Mirror) MirrorSet { return s | m.Set() }

// Without returns s with m removed.
func (s MirrorSet) Without(m Mirror) MirrorSet { return s &^ m.Set() }

// Union returns the mirrors in s or o.
func (s MirrorSet) Union(o MirrorSet) MirrorSet { return s | o }

// Intersect returns the mirrors in both s and o.
func (s MirrorSet) Intersect(o MirrorSet) MirrorSet { return s & o }

// Complement returns the mirrors outside s.
func (s MirrorSet) Complement() MirrorSet { return ^s }

// Size is the number of mirrors in s.
func (s MirrorSet) Size() int { return bits.OnesCount8(uint8(s)) }

// IsEmpty reports whether s has no mirrors.
func (s MirrorSet) IsEmpty() bool { return s == Empty }

// Contains reports whether sub is a subset of s.
func (s MirrorSet) Contains(sub MirrorSet) bool { return sub&^s == 0 }

// Mirrors returns the members of s in bit order.
func (s MirrorSet) Mirrors() []Mirror {
	out := make([]Mirror, 0, s.Size())
	for _, m := range Mirrors {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// String renders s as "{A0,B1}".
func (s MirrorSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range s.Mirrors() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.String())
	}
	b.WriteByte('}')
	return b.String()
}

// GoString keeps %#v readable in test failures.
func (s MirrorSet) GoString() string { return fmt.Sprintf("e8.MirrorSet(%s)", s) }
