package peaks

import (
	"fmt"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
)

// Histogram is the per-radius trace of an alternation run. Index r holds the
// value after r dilations; index 0 is unused and left at zero.
type Histogram struct {
	// Fraction is the share of consecutive extrema pairs, in merge order,
	// whose polarities differ. It is 0 when fewer than two extrema remain.
	Fraction []float64

	// MeanLive is the mean of the minima and maxima live-set sizes.
	MeanLive []float64
}

// MaxRadius returns the largest radius covered by the histogram.
func (h Histogram) MaxRadius() int {
	return len(h.Fraction) - 1
}

// AlternationHistogram dilates a fresh pair of Dilators one radius at a
// time up to maxRadius and records the alternation fraction and live-set
// sizes at each step. No gap spanning is applied.
func AlternationHistogram(signal []float64, maxRadius int) (Histogram, error) {
	if maxRadius < 0 {
		return Histogram{}, fmt.Errorf("%w: negative radius %d", extrema.ErrInvalidInput, maxRadius)
	}
	minima, maxima, err := newPair(signal)
	if err != nil {
		return Histogram{}, err
	}

	h := Histogram{
		Fraction: make([]float64, maxRadius+1),
		MeanLive: make([]float64, maxRadius+1),
	}
	h.MeanLive[0] = float64(len(signal))

	for r := 1; r <= maxRadius; r++ {
		minima.Dilate()
		maxima.Dilate()

		var (
			same, diff int
			prev       extrema.Polarity
			first      = true
		)
		_ = merge(minima, maxima, func(_ int, p extrema.Polarity) error {
			switch {
			case first:
				first = false
			case p == prev:
				same++
			default:
				diff++
			}
			prev = p
			return nil
		})

		if total := same + diff; total > 0 {
			h.Fraction[r] = float64(diff) / float64(total)
		}
		h.MeanLive[r] = float64(minima.Len()+maxima.Len()) / 2
	}
	return h, nil
}

// AlternationFractionHistogram returns only the Fraction trace of
// AlternationHistogram.
func AlternationFractionHistogram(signal []float64, maxRadius int) ([]float64, error) {
	h, err := AlternationHistogram(signal, maxRadius)
	if err != nil {
		return nil, err
	}
	return h.Fraction, nil
}
