package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-muddle/dsp/peaks"
)

// Errors returned by the scale estimators.
var (
	ErrHistogramTooShort = errors.New("scale: histogram too short")
	ErrNoEstimate        = errors.New("scale: no estimate")
)

// minBins is the shortest histogram with at least one harmonic interval.
const minBins = 4

// Estimate holds a scale estimate derived from an alternation histogram.
type Estimate struct {
	MeanRadius    int
	NaturalPeriod float64
	OptimalRadius int

	// Means[r] is the mean alternation fraction over [r, 2r] in the log
	// domain. Means[0] is unused.
	Means []float64

	// Fraction is the histogram the estimate was derived from.
	Fraction []float64
}

// FromHistogram estimates the natural scale from an alternation fraction
// histogram indexed by radius. Index 0 is ignored.
func FromHistogram(fraction []float64) (Estimate, error) {
	n := len(fraction)
	if n < minBins {
		return Estimate{}, fmt.Errorf("%w: %d bins, need %d", ErrHistogramTooShort, n, minBins)
	}

	// cum[r] integrates the fraction over ln(x) from x=1 to x=r.
	cum := make([]float64, n)
	logPrev := 0.0
	for r := 2; r < n; r++ {
		logR := math.Log(float64(r))
		cum[r] = cum[r-1] + (logR-logPrev)*(fraction[r]+fraction[r-1])*0.5
		logPrev = logR
	}

	// The mean value over [r, 2r] is (F(2r) - F(r)) / (ln 2r - ln r).
	means := make([]float64, n/2)
	best, bestMean := 0, 0.0
	for r := 1; r < len(means); r++ {
		m := (cum[2*r] - cum[r]) / math.Ln2
		means[r] = m
		if m > bestMean {
			best, bestMean = r, m
		}
	}
	if best == 0 {
		return Estimate{}, fmt.Errorf("%w: alternation fraction is zero everywhere", ErrNoEstimate)
	}

	return Estimate{
		MeanRadius:    best,
		NaturalPeriod: float64(2*best + 2),
		OptimalRadius: int(math.Round(float64(best) * math.Sqrt2)),
		Means:         means,
		Fraction:      fraction,
	}, nil
}

// EstimateSignal computes the alternation histogram of signal up to
// maxRadius and estimates its natural scale.
func EstimateSignal(signal []float64, maxRadius int) (Estimate, error) {
	frac, err := peaks.AlternationFractionHistogram(signal, maxRadius)
	if err != nil {
		return Estimate{}, err
	}
	return FromHistogram(frac)
}
