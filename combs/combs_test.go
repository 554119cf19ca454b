// SPDX-License-Identifier: MIT

package combs_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/e8poly/combs"
	"github.com/stretchr/testify/require"
)

func TestLenMatchesBinomial(t *testing.T) {
	for n := 0; n <= combs.MaxN; n++ {
		for k := 0; k <= n; k++ {
			require.Equal(t, combs.Binomial(n, k), combs.Len(n, k), "n=%d k=%d", n, k)
		}
	}
	require.Equal(t, 70, combs.Len(8, 4))
}

func TestMasksSortedWithPopcount(t *testing.T) {
	for n := 0; n <= combs.MaxN; n++ {
		total := 0
		for k := 0; k <= n; k++ {
			masks := combs.Masks(n, k)
			total += len(masks)
			for i, m := range masks {
				require.Equal(t, k, bits.OnesCount8(m))
				require.Less(t, int(m), 1<<n)
				if i > 0 {
					require.Less(t, masks[i-1], m)
				}
			}
		}
		require.Equal(t, 1<<n, total, "n=%d covers every mask", n)
	}
}

func TestRankInvertsAt(t *testing.T) {
	for n := 0; n <= combs.MaxN; n++ {
		for k := 0; k <= n; k++ {
			for i := 0; i < combs.Len(n, k); i++ {
				require.Equal(t, i, combs.Rank(n, combs.At(n, k, i)))
			}
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { combs.Len(9, 1) })
	require.Panics(t, func() { combs.At(3, 4, 0) })
	require.Panics(t, func() { combs.Rank(2, 0b100) })
}

func TestMasksIsCopy(t *testing.T) {
	m := combs.Masks(4, 2)
	m[0] = 0xff
	require.Equal(t, uint8(0b0011), combs.At(4, 2, 0))
}
