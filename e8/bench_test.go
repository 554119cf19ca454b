// SPDX-License-Identifier: MIT

package e8_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/e8poly/e8"
)

// BenchmarkProductReplacement measures one full-group sample.
func BenchmarkProductReplacement(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pr := e8.ProductReplacement{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pr.Sample(e8.All, rng)
	}
}

// BenchmarkVertexOrbitsExact walks all 135 D8 orbits of the full group.
func BenchmarkVertexOrbitsExact(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = e8.All.VertexOrbits(e8.WithExactTraversal())
	}
}
