package peaks

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
	"github.com/cwbudde/algo-muddle/internal/testutil"
)

func TestAlternationHistogramReference(t *testing.T) {
	h, err := AlternationHistogram(reference, 2)
	if err != nil {
		t.Fatalf("AlternationHistogram() error = %v", err)
	}
	if h.MaxRadius() != 2 {
		t.Fatalf("MaxRadius() = %d, want 2", h.MaxRadius())
	}

	wantFrac := []float64{0, 1, 2.0 / 3}
	wantLive := []float64{12, 4.5, 2}
	for r := range wantFrac {
		if h.Fraction[r] != wantFrac[r] {
			t.Fatalf("Fraction[%d] = %v, want %v", r, h.Fraction[r], wantFrac[r])
		}
		if h.MeanLive[r] != wantLive[r] {
			t.Fatalf("MeanLive[%d] = %v, want %v", r, h.MeanLive[r], wantLive[r])
		}
	}
}

func TestAlternationHistogramSine(t *testing.T) {
	data := testutil.Sine(40, 1, 400)
	h, err := AlternationHistogram(data, 60)
	if err != nil {
		t.Fatalf("AlternationHistogram() error = %v", err)
	}
	if h.Fraction[10] != 1 {
		t.Fatalf("Fraction[10] = %v, want 1", h.Fraction[10])
	}
	for r := 1; r <= h.MaxRadius(); r++ {
		if f := h.Fraction[r]; f < 0 || f > 1 {
			t.Fatalf("Fraction[%d] = %v out of range", r, f)
		}
		if h.MeanLive[r] > h.MeanLive[r-1] {
			t.Fatalf("MeanLive grew at radius %d: %v > %v", r, h.MeanLive[r], h.MeanLive[r-1])
		}
	}
}

func TestAlternationFractionHistogramMatchesTrace(t *testing.T) {
	data := testutil.NoisySine(30, 1, 2, 0.3, 500)
	h, err := AlternationHistogram(data, 25)
	if err != nil {
		t.Fatalf("AlternationHistogram() error = %v", err)
	}
	frac, err := AlternationFractionHistogram(data, 25)
	if err != nil {
		t.Fatalf("AlternationFractionHistogram() error = %v", err)
	}
	for r := range frac {
		if frac[r] != h.Fraction[r] {
			t.Fatalf("radius %d: %v != %v", r, frac[r], h.Fraction[r])
		}
	}
}

func TestAlternationHistogramErrors(t *testing.T) {
	if _, err := AlternationHistogram(reference, -1); !errors.Is(err, extrema.ErrInvalidInput) {
		t.Fatalf("negative radius: error = %v", err)
	}
	if _, err := AlternationFractionHistogram(nil, 3); !errors.Is(err, extrema.ErrInvalidInput) {
		t.Fatalf("empty signal: error = %v", err)
	}
}
