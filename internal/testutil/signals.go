package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a sine wave with the given period in samples.
func Sine(period, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates uniform noise in [-amplitude, amplitude] with a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoisySine adds seeded noise to a sine wave. Equal values are practically
// impossible, which keeps tie-breaking out of tests that don't target it.
func NoisySine(period, amplitude float64, seed int64, noise float64, length int) []float64 {
	out := Sine(period, amplitude, length)
	n := Noise(seed, noise, length)
	for i := range out {
		out[i] += n[i]
	}
	return out
}

// Levels generates seeded integer samples in [0, levels). Runs of equal
// values are frequent, which exercises tie-breaking and flat regions.
func Levels(seed int64, levels, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float64(rng.Intn(levels))
	}
	return out
}

// Spike returns a constant signal with a single sample set to height at pos.
// A negative height gives a trough.
func Spike(length, pos int, base, height float64) []float64 {
	out := DC(base, length)
	if pos >= 0 && pos < length {
		out[pos] = base + height
	}
	return out
}

// Plateau returns a constant signal raised to level on [from, to).
func Plateau(length, from, to int, base, level float64) []float64 {
	out := DC(base, length)
	for i := max(from, 0); i < min(to, length); i++ {
		out[i] = level
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
