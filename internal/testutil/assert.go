package testutil

import "testing"

// RequireIntsEqual fails t if got and want differ in length or content.
func RequireIntsEqual(t testing.TB, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
}

// RequireStrictlyIncreasing fails t unless idx is strictly increasing.
func RequireStrictlyIncreasing(t testing.TB, idx []int) {
	t.Helper()
	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			t.Fatalf("not strictly increasing at %d: %d after %d", i, idx[i], idx[i-1])
		}
	}
}

// IsSubset reports whether every element of sub also occurs in set.
// Both slices must be sorted.
func IsSubset(sub, set []int) bool {
	j := 0
	for _, v := range sub {
		for j < len(set) && set[j] < v {
			j++
		}
		if j == len(set) || set[j] != v {
			return false
		}
	}
	return true
}
