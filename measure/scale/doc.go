// Package scale suggests a dilation radius for peak detection.
//
// The alternation fraction of a signal (see peaks.AlternationHistogram)
// stays close to one while the dilation radius is below the natural period
// of the signal and falls once same-polarity extrema start to repeat.
// Estimate integrates the fraction over ln(r) with the trapezoidal rule and
// averages it over every harmonic interval [r, 2r]. The interval with the
// largest mean gives:
//
//   - MeanRadius: the start r of the best interval
//   - NaturalPeriod: 2*MeanRadius + 2 samples
//   - OptimalRadius: the interval centre in the log domain, r*sqrt(2)
//
// AutocorrelationPeriod provides an independent period estimate from the
// FFT autocorrelation of the signal.
//
// # Usage
//
//	est, err := scale.EstimateSignal(signal, 300)
//	if err != nil {
//	    return err
//	}
//	res, err := peaks.FindPeaks(signal, est.OptimalRadius, true)
package scale
