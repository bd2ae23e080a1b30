package scale

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
)

// AutocorrelationPeriod returns the lag in [minLag, maxLag] of the highest
// local maximum of the autocorrelation of signal. The mean is removed first
// and the biased estimator is used, so earlier repetitions are favored over
// their multiples.
func AutocorrelationPeriod(signal []float64, minLag, maxLag int) (int, error) {
	if err := extrema.Validate(signal); err != nil {
		return 0, err
	}
	n := len(signal)
	if minLag < 1 || maxLag < minLag || maxLag >= n-1 {
		return 0, fmt.Errorf("%w: lag range [%d, %d] for %d samples", extrema.ErrInvalidInput, minLag, maxLag, n)
	}

	acf, err := autocorrelate(signal)
	if err != nil {
		return 0, err
	}

	best := -1
	for lag := minLag; lag <= maxLag; lag++ {
		if acf[lag] <= acf[lag-1] || acf[lag] < acf[lag+1] {
			continue
		}
		if best < 0 || acf[lag] > acf[best] {
			best = lag
		}
	}
	if best < 0 || acf[best] <= 0 {
		return 0, fmt.Errorf("%w: no autocorrelation peak in [%d, %d]", ErrNoEstimate, minLag, maxLag)
	}
	return best, nil
}

// autocorrelate returns the linear autocorrelation of the mean-removed
// signal for lags 0..n-1, normalized to 1 at lag 0.
func autocorrelate(signal []float64) ([]float64, error) {
	n := len(signal)
	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	// Padding to at least 2n keeps the circular correlation from wrapping.
	fftSize := nextPowerOf2(2 * n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("scale: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v-mean, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("scale: forward FFT failed: %w", err)
	}
	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, x := range freq {
		re[i], im[i] = real(x), imag(x)
	}
	power := make([]float64, fftSize)
	vecmath.Power(power, re, im)
	for i, p := range power {
		freq[i] = complex(p, 0)
	}
	if err := plan.Inverse(in, freq); err != nil {
		return nil, fmt.Errorf("scale: inverse FFT failed: %w", err)
	}

	acf := make([]float64, n)
	zero := real(in[0])
	for lag := range acf {
		if zero != 0 {
			acf[lag] = real(in[lag]) / zero
		}
	}
	return acf, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
