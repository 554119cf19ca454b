// SPDX-License-Identifier: MIT

// Package combs provides the static k-subset tables used to index D8 orbits.
//
// What
//
//   - For every n in 0..8 and k in 0..n, the ascending list of n-bit masks with
//     exactly k bits set (At, Len).
//   - The inverse lookup: the position of a mask inside its list (Rank).
//
// The tables are built once at package init from gonum's combin generator and
// are read-only afterwards; every accessor is safe for concurrent use.
//
// Complexity
//
//   - Build: Σ C(n,k) masks over n ≤ 8, i.e. 511 entries.
//   - At/Len/Rank: O(1).
package combs
