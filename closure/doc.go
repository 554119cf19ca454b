// SPDX-License-Identifier: MIT

// Package closure computes the breadth-first closure of a set of keys under
// a neighbour function.
//
// What
//
//   - Keys are any comparable value; the neighbour function is supplied by
//     the caller, so the explored "graph" never has to be materialized.
//   - Returns a Result containing:
//   - Order: discovery sequence, starts first
//   - Depth: map from key → distance from the nearest start
//   - Honors MaxDepth (d>0) and a MaxVisits bound that turns a runaway
//     search into ErrLimitExceeded.
//
// Why
//
//   - Orbit enumeration: the keys are orbit labels and the neighbour
//     function applies group generators.
//   - Face assembly: the keys are points and the neighbour function reflects
//     them through the mirrors of one face.
//
// Determinism
//
//	Starts are enqueued in slice order and neighbours in the order the
//	function returns them. For a deterministic neighbour function the
//	discovery order is fully reproducible.
//
// Complexity (V = keys reached, E = neighbour entries returned)
//
//   - Time:   O(V + E) map operations
//   - Memory: O(V)
//
// Usage
//
//	res, err := closure.BFS([]int{0}, func(k int) []int {
//		return []int{(k + 1) % 12, (k + 5) % 12}
//	}, closure.WithMaxVisits(100))
//
// Errors
//
//   - ErrNilNext          if next is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrLimitExceeded    if more than MaxVisits keys are discovered.
//   - ctx.Err()           on cancellation.
package closure
