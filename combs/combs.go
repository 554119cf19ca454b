// SPDX-License-Identifier: MIT

package combs

import (
	"fmt"
	"math/bits"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxN is the widest universe covered by the tables.
const MaxN = 8

var (
	// lists[n][k] holds the n-bit masks with k set bits, ascending.
	lists [MaxN + 1][MaxN + 1][]uint8
	// ranks[n][mask] is the index of mask inside lists[n][popcount(mask)].
	ranks [MaxN + 1][1 << MaxN]uint8
)

func init() {
	for n := 0; n <= MaxN; n++ {
		for k := 0; k <= n; k++ {
			subsets := combin.Combinations(n, k)
			masks := make([]uint8, 0, len(subsets))
			for _, subset := range subsets {
				var mask uint8
				for _, b := range subset {
					mask |= 1 << b
				}
				masks = append(masks, mask)
			}
			slices.Sort(masks)
			for i, mask := range masks {
				ranks[n][mask] = uint8(i)
			}
			lists[n][k] = masks
		}
	}
}

// Len returns C(n, k), the number of n-bit masks with k bits set.
// It panics when n or k fall outside 0 ≤ k ≤ n ≤ MaxN.
func Len(n, k int) int {
	mustRange(n, k)
	return len(lists[n][k])
}

// At returns the i-th n-bit mask with k bits set in ascending order.
func At(n, k, i int) uint8 {
	mustRange(n, k)
	return lists[n][k][i]
}

// Masks returns a copy of the ascending list of n-bit masks with k bits set.
func Masks(n, k int) []uint8 {
	mustRange(n, k)
	return slices.Clone(lists[n][k])
}

// Rank returns the position of mask in the list of n-bit masks that share its
// popcount. It is the inverse of At: Rank(n, At(n, k, i)) == i.
func Rank(n int, mask uint8) int {
	mustRange(n, bits.OnesCount8(mask))
	if n < MaxN && mask>>n != 0 {
		panic(fmt.Sprintf("combs: mask %08b wider than %d bits", mask, n))
	}
	return int(ranks[n][mask])
}

// Binomial returns C(n, k) for any non-negative arguments, matching Len inside
// the table range.
func Binomial(n, k int) int {
	return combin.Binomial(n, k)
}

func mustRange(n, k int) {
	if n < 0 || n > MaxN || k < 0 || k > n {
		panic(fmt.Sprintf("combs: (n=%d, k=%d) outside table range", n, k))
	}
}
