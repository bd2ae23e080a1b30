package peaks

import (
	"fmt"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
)

// Extremum is one entry of the merged sequence.
type Extremum struct {
	Index    int
	Polarity extrema.Polarity
}

// Result holds the indices of the detected minima and maxima, each in
// increasing order.
//
// With gap spanning the merged sequence alternates polarity and the two
// lengths differ by at most one.
type Result struct {
	Minima []int
	Maxima []int
}

// Counts returns the number of minima and maxima.
func (r Result) Counts() (minima, maxima int) {
	return len(r.Minima), len(r.Maxima)
}

// Merged returns all extrema sorted by index. On an equal index the minimum
// comes first, matching the merge order of FindPeaks.
func (r Result) Merged() []Extremum {
	out := make([]Extremum, 0, len(r.Minima)+len(r.Maxima))
	i, j := 0, 0
	for i < len(r.Minima) || j < len(r.Maxima) {
		if j == len(r.Maxima) || (i < len(r.Minima) && r.Minima[i] <= r.Maxima[j]) {
			out = append(out, Extremum{Index: r.Minima[i], Polarity: extrema.Minimum})
			i++
		} else {
			out = append(out, Extremum{Index: r.Maxima[j], Polarity: extrema.Maximum})
			j++
		}
	}
	return out
}

// Values pairs the minima and maxima back to their sample values.
func (r Result) Values(signal []float64) (minima, maxima []float64) {
	minima = make([]float64, len(r.Minima))
	for i, x := range r.Minima {
		minima[i] = signal[x]
	}
	maxima = make([]float64, len(r.Maxima))
	for i, x := range r.Maxima {
		maxima[i] = signal[x]
	}
	return minima, maxima
}

// FindPeaks returns the minima and maxima of signal that dominate their
// neighborhood at the given radius. Radius 0 returns every index as both a
// minimum and a maximum.
//
// With spanGaps set, whenever two extrema of the same polarity follow each
// other, the opposite extremum with the largest extent between them is
// inserted. When no index in the interval was ever an extremum of the
// opposite polarity, its midpoint is used.
func FindPeaks(signal []float64, radius int, spanGaps bool) (Result, error) {
	if radius < 0 {
		return Result{}, fmt.Errorf("%w: negative radius %d", extrema.ErrInvalidInput, radius)
	}
	minima, maxima, err := newPair(signal)
	if err != nil {
		return Result{}, err
	}
	minima.DilateTo(radius)
	maxima.DilateTo(radius)

	res := Result{
		Minima: make([]int, 0, minima.Len()+1),
		Maxima: make([]int, 0, maxima.Len()+1),
	}
	var (
		prevPolarity extrema.Polarity
		prevIdx      = -1
	)
	err = merge(minima, maxima, func(idx int, p extrema.Polarity) error {
		if spanGaps && prevIdx >= 0 && p == prevPolarity {
			other := minima
			if p == extrema.Minimum {
				other = maxima
			}
			x, err := other.DominantBetween(prevIdx, idx)
			if err != nil {
				return fmt.Errorf("peaks: span gap between %d and %d: %w", prevIdx, idx, err)
			}
			res.add(x, other.Polarity())
		}
		res.add(idx, p)
		prevPolarity, prevIdx = p, idx
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (r *Result) add(idx int, p extrema.Polarity) {
	if p == extrema.Minimum {
		r.Minima = append(r.Minima, idx)
	} else {
		r.Maxima = append(r.Maxima, idx)
	}
}

func newPair(signal []float64) (minima, maxima *extrema.Dilator, err error) {
	minima, err = extrema.NewDilator(signal, extrema.Minimum)
	if err != nil {
		return nil, nil, err
	}
	maxima, err = extrema.NewDilator(signal, extrema.Maximum)
	if err != nil {
		return nil, nil, err
	}
	return minima, maxima, nil
}

// merge visits the live extrema of both Dilators in index order. A maximum
// is taken only when its index is strictly smaller, so an index live in both
// sets yields the minimum first.
func merge(minima, maxima *extrema.Dilator, visit func(idx int, p extrema.Polarity) error) error {
	i, j := 0, 0
	for i < minima.Len() || j < maxima.Len() {
		var (
			idx int
			p   extrema.Polarity
		)
		if j < maxima.Len() && (i == minima.Len() || maxima.At(j) < minima.At(i)) {
			idx, p = maxima.At(j), extrema.Maximum
			j++
		} else {
			idx, p = minima.At(i), extrema.Minimum
			i++
		}
		if err := visit(idx, p); err != nil {
			return err
		}
	}
	return nil
}

// IsAlternating reports whether the merged sequence never holds two
// consecutive extrema of the same polarity.
func IsAlternating(merged []Extremum) bool {
	for i := 1; i < len(merged); i++ {
		if merged[i].Polarity == merged[i-1].Polarity {
			return false
		}
	}
	return true
}
