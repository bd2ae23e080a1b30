// Package extrema implements multiscale extremum detection by dilation.
//
// A Dilator tracks the local maxima (or minima) of a signal while a
// comparison radius grows one sample at a time. At radius 0 every sample is
// an extremum of both polarities. Each call to Dilate increments the radius
// and prunes the candidates that are dominated either by the sample exactly
// radius positions away or by a neighboring live candidate whose reach
// overlaps their own. What survives after r dilations are the extrema that
// dominate their neighborhood at scale r.
//
// Ties are broken left to right: a candidate yields to an equal value on its
// right but not to an equal value on its left, so a flat region keeps exactly
// one canonical extremum.
//
// Every pruned index records its extent, the largest radius at which it was
// still undominated. DominantBetween uses the extents to pick the most
// dominant extremum inside an interval, preferring the most central one.
//
// # Usage
//
//	maxima, err := extrema.NewDilator(signal, extrema.Maximum)
//	if err != nil {
//	    return err
//	}
//	maxima.DilateTo(15)
//	for i := 0; i < maxima.Len(); i++ {
//	    fmt.Println(maxima.At(i))
//	}
//
// A Dilator is not safe for concurrent use. Distinct Dilators over the same
// signal share nothing but the read-only samples and may run in parallel.
package extrema
