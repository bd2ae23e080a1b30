package scale

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
	"github.com/cwbudde/algo-muddle/internal/testutil"
)

func TestAutocorrelationPeriodSine(t *testing.T) {
	tests := []struct {
		period float64
		noise  float64
	}{
		{40, 0},
		{25, 0.2},
		{64, 0.3},
	}
	for _, tt := range tests {
		data := testutil.NoisySine(tt.period, 1, 4, tt.noise, 2048)
		got, err := AutocorrelationPeriod(data, 5, 100)
		if err != nil {
			t.Fatalf("period %v: AutocorrelationPeriod() error = %v", tt.period, err)
		}
		if d := float64(got) - tt.period; d < -2 || d > 2 {
			t.Fatalf("period %v: got %d", tt.period, got)
		}
	}
}

func TestAutocorrelationPeriodErrors(t *testing.T) {
	data := testutil.Sine(20, 1, 100)
	for _, r := range [][2]int{{0, 10}, {10, 5}, {5, 99}} {
		if _, err := AutocorrelationPeriod(data, r[0], r[1]); !errors.Is(err, extrema.ErrInvalidInput) {
			t.Fatalf("range %v: error = %v, want ErrInvalidInput", r, err)
		}
	}
	if _, err := AutocorrelationPeriod(testutil.DC(2, 100), 2, 50); !errors.Is(err, ErrNoEstimate) {
		t.Fatalf("constant signal: error = %v, want ErrNoEstimate", err)
	}
}

func TestAutocorrelateZeroLag(t *testing.T) {
	acf, err := autocorrelate(testutil.Noise(3, 1, 300))
	if err != nil {
		t.Fatalf("autocorrelate() error = %v", err)
	}
	if len(acf) != 300 {
		t.Fatalf("len = %d, want 300", len(acf))
	}
	if d := acf[0] - 1; d < -1e-9 || d > 1e-9 {
		t.Fatalf("acf[0] = %v, want 1", acf[0])
	}
	for lag, v := range acf {
		if v > 1+1e-9 || v < -1-1e-9 {
			t.Fatalf("acf[%d] = %v out of range", lag, v)
		}
	}
}

func TestAutocorrelateMatchesDirectSum(t *testing.T) {
	data := testutil.NoisySine(17, 1, 9, 0.4, 257)
	acf, err := autocorrelate(data)
	if err != nil {
		t.Fatalf("autocorrelate() error = %v", err)
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))
	direct := func(lag int) float64 {
		sum := 0.0
		for i := 0; i+lag < len(data); i++ {
			sum += (data[i] - mean) * (data[i+lag] - mean)
		}
		return sum
	}
	zero := direct(0)
	for _, lag := range []int{1, 5, 17, 34, 100, 256} {
		want := direct(lag) / zero
		if d := acf[lag] - want; d < -1e-9 || d > 1e-9 {
			t.Fatalf("acf[%d] = %v, want %v", lag, acf[lag], want)
		}
	}
}
