// SPDX-License-Identifier: MIT

package closure_test

import (
	"testing"

	"github.com/katalvlaran/e8poly/closure"
)

// BenchmarkBFS_Cycle measures the closure of a long cycle.
func BenchmarkBFS_Cycle(b *testing.B) {
	const N = 10000
	next := cyclic(N)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = closure.BFS([]int{0}, next)
	}
}
