package testutil

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine(8, 2, 9)
	if len(s) != 9 {
		t.Fatalf("len = %d, want 9", len(s))
	}
	if math.Abs(s[0]) > 1e-15 || math.Abs(s[2]-2) > 1e-12 || math.Abs(s[6]+2) > 1e-12 {
		t.Fatalf("unexpected sine samples: %v", s)
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(42, 1.0, 64)
	b := Noise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestLevels(t *testing.T) {
	a := Levels(7, 4, 200)
	b := Levels(7, 4, 200)
	seen := map[float64]bool{}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("levels not deterministic at index %d", i)
		}
		if a[i] != math.Trunc(a[i]) || a[i] < 0 || a[i] > 3 {
			t.Fatalf("a[%d] = %v, want an integer in [0, 3]", i, a[i])
		}
		seen[a[i]] = true
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d distinct levels, want 4", len(seen))
	}
}

func TestSpike(t *testing.T) {
	s := Spike(5, 2, 1, -3)
	want := []float64{1, 1, -2, 1, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("s = %v, want %v", s, want)
		}
	}
}

func TestPlateauClipsRange(t *testing.T) {
	s := Plateau(4, -2, 2, 0, 7)
	want := []float64{7, 7, 0, 0}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("s = %v, want %v", s, want)
		}
	}
}

func TestIsSubset(t *testing.T) {
	tests := []struct {
		sub, set []int
		want     bool
	}{
		{nil, nil, true},
		{[]int{2, 5}, []int{1, 2, 3, 5}, true},
		{[]int{2, 4}, []int{1, 2, 3, 5}, false},
		{[]int{9}, []int{1, 2}, false},
	}
	for _, tt := range tests {
		if got := IsSubset(tt.sub, tt.set); got != tt.want {
			t.Fatalf("IsSubset(%v, %v) = %v, want %v", tt.sub, tt.set, got, tt.want)
		}
	}
}
