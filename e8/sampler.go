// SPDX-License-Identifier: MIT

package e8

import "math/rand"

// DefaultRounds is the number of product-replacement steps per sample.
const DefaultRounds = 100

// Sampler draws approximately uniform elements of the subgroup generated by
// a MirrorSet.
type Sampler interface {
	Sample(s MirrorSet, rng *rand.Rand) Matrix
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func(s MirrorSet, rng *rand.Rand) Matrix

// Sample calls f.
func (f SamplerFunc) Sample(s MirrorSet, rng *rand.Rand) Matrix { return f(s, rng) }

// ProductReplacement is the classical product-replacement walk over eight
// slots seeded with the generators of s (identity for mirrors outside s).
// Each round replaces one slot by its product with another slot or that
// slot's inverse, on a random side. Rounds <= 0 means DefaultRounds.
type ProductReplacement struct {
	Rounds int
}

// Sample runs the walk and returns a random slot.
func (pr ProductReplacement) Sample(s MirrorSet, rng *rand.Rand) Matrix {
	rounds := pr.Rounds
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	var slots [NumMirrors]Matrix
	for i, m := range Mirrors {
		if s.Has(m) {
			slots[i] = m.Matrix()
		} else {
			slots[i] = Identity()
		}
	}
	for r := 0; r < rounds; r++ {
		i := rng.Intn(NumMirrors)
		j := rng.Intn(NumMirrors - 1)
		if j >= i {
			j++
		}
		mul := slots[j]
		if rng.Intn(2) == 1 {
			mul = mul.Inverse()
		}
		if rng.Intn(2) == 1 {
			slots[i] = slots[i].Mul(mul)
		} else {
			slots[i] = mul.Mul(slots[i])
		}
	}
	return slots[rng.Intn(NumMirrors)]
}
