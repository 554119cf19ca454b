// SPDX-License-Identifier: MIT

package closure_test

import (
	"fmt"

	"github.com/katalvlaran/e8poly/closure"
)

// ExampleBFS walks the residues mod 12 generated by +4 and +6 from 0.
func ExampleBFS() {
	res, err := closure.BFS([]int{0}, func(k int) []int {
		return []int{(k + 4) % 12, (k + 6) % 12}
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 4 6 8 10 2]
}
