// SPDX-License-Identifier: MIT

package closure_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/e8poly/closure"
	"github.com/stretchr/testify/require"
)

// cyclic returns the neighbour function of the cycle on n nodes.
func cyclic(n int) func(int) []int {
	return func(k int) []int { return []int{(k + 1) % n, (k + n - 1) % n} }
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := closure.BFS[int]([]int{0}, nil)
	require.ErrorIs(t, err, closure.ErrNilNext)

	_, err = closure.BFS([]int{0}, cyclic(4), closure.WithMaxDepth(-1))
	require.ErrorIs(t, err, closure.ErrOptionViolation)

	_, err = closure.BFS([]int{0}, cyclic(4), closure.WithMaxVisits(-1))
	require.ErrorIs(t, err, closure.ErrOptionViolation)
}

// TestBFS_CycleDepths covers a cycle and checks layering.
func TestBFS_CycleDepths(t *testing.T) {
	res, err := closure.BFS([]int{0}, cyclic(6))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 5, 2, 4, 3}, res.Order)
	require.Equal(t, map[int]int{0: 0, 1: 1, 5: 1, 2: 2, 4: 2, 3: 3}, res.Depth)
	require.Equal(t, 6, res.Len())
	require.True(t, res.Contains(3))
	require.False(t, res.Contains(6))
}

// TestBFS_MultipleStarts checks that all starts sit at depth 0 and
// duplicates are dropped.
func TestBFS_MultipleStarts(t *testing.T) {
	res, err := closure.BFS([]int{0, 3, 0}, cyclic(6))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 1, 5, 4, 2}, res.Order)
	require.Equal(t, 0, res.Depth[3])
	require.Equal(t, 1, res.Depth[2])
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := closure.BFS([]int{0}, cyclic(10), closure.WithMaxDepth(2))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 9, 2, 8}, res.Order)
}

func TestBFS_MaxVisits(t *testing.T) {
	res, err := closure.BFS([]int{0}, cyclic(10), closure.WithMaxVisits(10))
	require.NoError(t, err)
	require.Equal(t, 10, res.Len())

	res, err = closure.BFS([]int{0}, cyclic(10), closure.WithMaxVisits(9))
	require.ErrorIs(t, err, closure.ErrLimitExceeded)
	require.Equal(t, 9, res.Len(), "partial result is kept")
}

func TestBFS_StructKeys(t *testing.T) {
	type cell struct{ x, y int }
	next := func(c cell) []cell {
		var out []cell
		if c.x < 2 {
			out = append(out, cell{c.x + 1, c.y})
		}
		if c.y < 2 {
			out = append(out, cell{c.x, c.y + 1})
		}
		return out
	}
	res, err := closure.BFS([]cell{{0, 0}}, next)
	require.NoError(t, err)
	require.Equal(t, 9, res.Len())
	require.Equal(t, 4, res.Depth[cell{2, 2}])
}

func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := closure.BFS([]int{0}, cyclic(100), closure.WithContext(ctx))
	require.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
