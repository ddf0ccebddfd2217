// File: utils.go
// Role: Helpers for comparing cycles returned by FindCycle:
//       IndexOf, Reverse, Canonical.
package dfs

import "github.com/katalvlaran/stickloop/geom"

// IndexOf returns the first index of k in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []geom.Key, k geom.Key) int {
	for i, x := range s {
		if x == k {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []geom.Key) []geom.Key {
	out := make([]geom.Key, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Canonical returns the rotation of the simple cycle c that starts at its
// smallest key, walked toward the smaller of that key's two neighbors.
// Two cycles over the same closed path have equal canonical forms whatever
// their start and direction. c is not modified.
// Time Complexity: O(n).
func Canonical(c []geom.Key) []geom.Key {
	n := len(c)
	if n == 0 {
		return nil
	}

	m := 0
	for i := 1; i < n; i++ {
		if c[i].Less(c[m]) {
			m = i
		}
	}

	out := make([]geom.Key, n)
	for i := 0; i < n; i++ {
		out[i] = c[(m+i)%n]
	}
	if n > 2 && out[n-1].Less(out[1]) {
		// walk the other way round, keeping out[0] in place
		rev := Reverse(out[1:])
		copy(out[1:], rev)
	}

	return out
}
