// Package peaks finds the peaks and troughs of a signal at a chosen scale
// and merges them into one polarity-alternating sequence.
//
// FindPeaks dilates a maxima and a minima extrema.Dilator to the requested
// radius and walks both live sets in index order. With gap spanning enabled,
// two consecutive extrema of the same polarity get the most dominant
// opposite extremum between them spliced in, so the merged sequence always
// alternates.
//
// AlternationHistogram records, for every radius up to a limit, how often
// consecutive extrema alternate in polarity. The fraction drops once the
// radius passes the natural period of the signal; the measure/scale package
// turns it into a scale estimate.
//
// # Usage
//
//	res, err := peaks.FindPeaks(signal, 15, true)
//	if err != nil {
//	    return err
//	}
//	for _, e := range res.Merged() {
//	    fmt.Println(e.Index, e.Polarity, signal[e.Index])
//	}
package peaks
