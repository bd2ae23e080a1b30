// Package interval summarizes detected extrema: their spacing in samples
// and the swing between consecutive peaks and troughs.
package interval

import "math"

// Stats holds the moments of a set of values.
type Stats struct {
	Count  int
	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Max    float64
}

// Accumulator collects Stats incrementally.
type Accumulator struct {
	n        int
	mean     float64
	m2       float64
	min, max float64
}

// Add includes x in the running statistics.
func (a *Accumulator) Add(x float64) {
	a.n++
	if a.n == 1 {
		a.min, a.max = x, x
	} else {
		a.min = math.Min(a.min, x)
		a.max = math.Max(a.max, x)
	}

	// Welford update.
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Result returns the statistics of all values added so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}
	return Stats{
		Count:  a.n,
		Mean:   a.mean,
		StdDev: math.Sqrt(a.m2 / float64(a.n)),
		Min:    a.min,
		Max:    a.max,
	}
}

// Reset clears all accumulated data.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Spacing returns the statistics of the gaps between consecutive indices.
func Spacing(idx []int) Stats {
	var acc Accumulator
	for i := 1; i < len(idx); i++ {
		acc.Add(float64(idx[i] - idx[i-1]))
	}
	return acc.Result()
}

// Summary describes the extrema found in a signal.
type Summary struct {
	MinimaSpacing Stats
	MaximaSpacing Stats

	// Swing covers the absolute value difference of every adjacent
	// minimum/maximum pair in index order.
	Swing Stats
}

// Period returns the mean spacing of maxima and minima combined, weighted
// by their counts, or 0 if neither has two entries.
func (s Summary) Period() float64 {
	n := s.MinimaSpacing.Count + s.MaximaSpacing.Count
	if n == 0 {
		return 0
	}
	return (s.MinimaSpacing.Mean*float64(s.MinimaSpacing.Count) +
		s.MaximaSpacing.Mean*float64(s.MaximaSpacing.Count)) / float64(n)
}

// Summarize computes the Summary of sorted minima and maxima indices into
// signal.
func Summarize(signal []float64, minima, maxima []int) Summary {
	var swing Accumulator
	i, j := 0, 0
	prev, prevIsMax := -1, false
	for i < len(minima) || j < len(maxima) {
		var x int
		var isMax bool
		if j < len(maxima) && (i == len(minima) || maxima[j] < minima[i]) {
			x, isMax = maxima[j], true
			j++
		} else {
			x, isMax = minima[i], false
			i++
		}
		if prev >= 0 && isMax != prevIsMax {
			swing.Add(math.Abs(signal[x] - signal[prev]))
		}
		prev, prevIsMax = x, isMax
	}

	return Summary{
		MinimaSpacing: Spacing(minima),
		MaximaSpacing: Spacing(maxima),
		Swing:         swing.Result(),
	}
}
