// Command muddle finds the peaks and troughs of a signal at a chosen
// dilation scale.
//
// Usage:
//
//	muddle [flags] [file]
//
// Samples are read one per line from file, or from stdin when file is
// omitted or "-". Defaults come from the MUDDLE_* environment variables (an
// optional .env file is loaded first); flags override them.
//
// Examples:
//
//	muddle -radius 15 ppg.txt
//	muddle -list -column 1 ppg.tsv
//	muddle -hist -max-radius 300 ppg.txt
//	muddle -estimate ppg.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-muddle/dsp/extrema"
	"github.com/cwbudde/algo-muddle/dsp/peaks"
	"github.com/cwbudde/algo-muddle/internal/config"
	"github.com/cwbudde/algo-muddle/internal/logging"
	"github.com/cwbudde/algo-muddle/internal/sampleio"
	"github.com/cwbudde/algo-muddle/measure/scale"
	"github.com/cwbudde/algo-muddle/stats/interval"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	radius    int
	spanGaps  bool
	column    int
	float32   bool
	list      bool
	hist      bool
	estimate  bool
	maxRadius int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts, files, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	features := cpu.DetectFeatures()
	logger.Debug("host",
		zap.String("arch", features.Architecture),
		zap.Bool("sse2", features.HasSSE2),
		zap.Bool("avx2", features.HasAVX2),
		zap.Bool("neon", features.HasNEON),
	)

	if len(files) > 1 {
		return fmt.Errorf("expected at most one input file, got %d", len(files))
	}
	source := "-"
	if len(files) == 1 {
		source = files[0]
	}

	signal, err := readSignal(source, stdin, opts)
	if err != nil {
		return err
	}
	logger.Info("signal loaded", zap.String("source", source), zap.Int("samples", len(signal)))

	switch {
	case opts.hist:
		return printHistogram(stdout, logger, signal, opts.maxRadius)
	case opts.estimate:
		return printEstimate(stdout, logger, signal, opts.maxRadius)
	default:
		return printPeaks(stdout, logger, signal, opts)
	}
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet("muddle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.IntVar(&o.radius, "radius", cfg.Radius, "dilation radius in samples")
	fs.BoolVar(&o.spanGaps, "span-gaps", cfg.SpanGaps, "insert opposite extrema between same-polarity neighbors")
	fs.IntVar(&o.column, "column", cfg.Column, "zero-based input column")
	fs.BoolVar(&o.float32, "float32", false, "round samples to single precision")
	fs.BoolVar(&o.list, "list", false, "print only the merged extrema")
	fs.BoolVar(&o.hist, "hist", false, "print the alternation histogram up to -max-radius")
	fs.BoolVar(&o.estimate, "estimate", false, "estimate the natural scale from a histogram up to -max-radius")
	fs.IntVar(&o.maxRadius, "max-radius", cfg.MaxRadius, "largest radius for -hist and -estimate")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: muddle [flags] [file]\n\n")
		fmt.Fprintf(stderr, "Finds local extrema of a signal by multiscale dilation.\n")
		fmt.Fprintf(stderr, "Reads one sample per line from file or stdin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  muddle -radius 15 ppg.txt\n")
		fmt.Fprintf(stderr, "  muddle -hist -max-radius 300 ppg.txt\n")
		fmt.Fprintf(stderr, "  muddle -estimate < ppg.txt\n")
	}
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	if o.radius < 0 {
		return options{}, nil, fmt.Errorf("radius must be >= 0: %d", o.radius)
	}
	if o.maxRadius < 1 {
		return options{}, nil, fmt.Errorf("max-radius must be >= 1: %d", o.maxRadius)
	}
	if o.hist && o.estimate {
		return options{}, nil, fmt.Errorf("hist and estimate are mutually exclusive")
	}
	return o, fs.Args(), nil
}

func readSignal(source string, stdin io.Reader, o options) ([]float64, error) {
	readOpts := []sampleio.Option{sampleio.WithColumn(o.column)}
	if o.float32 {
		readOpts = append(readOpts, sampleio.WithFloat32())
	}
	if source == "-" {
		return sampleio.Read(stdin, readOpts...)
	}
	return sampleio.ReadFile(source, readOpts...)
}

func printPeaks(w io.Writer, logger *zap.Logger, signal []float64, o options) error {
	res, err := peaks.FindPeaks(signal, o.radius, o.spanGaps)
	if err != nil {
		return err
	}
	nMin, nMax := res.Counts()
	summary := interval.Summarize(signal, res.Minima, res.Maxima)
	logger.Info("peaks found",
		zap.Int("radius", o.radius),
		zap.Bool("spanGaps", o.spanGaps),
		zap.Int("minima", nMin),
		zap.Int("maxima", nMax),
		zap.Float64("period", summary.Period()),
		zap.Float64("meanSwing", summary.Swing.Mean),
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if o.list {
		fmt.Fprintf(tw, "index\tpolarity\tvalue\n")
		for _, e := range res.Merged() {
			fmt.Fprintf(tw, "%d\t%s\t%g\n", e.Index, e.Polarity, signal[e.Index])
		}
		return tw.Flush()
	}

	kind := make([]string, len(signal))
	for _, x := range res.Minima {
		kind[x] = "min"
	}
	for _, x := range res.Maxima {
		if kind[x] != "" {
			kind[x] = "both"
		} else {
			kind[x] = "max"
		}
	}

	fmt.Fprintf(tw, "index\tvalue\tminimum\tmaximum\n")
	for i, v := range signal {
		var lo, hi string
		switch kind[i] {
		case "min":
			lo = fmt.Sprintf("%g", v)
		case "max":
			hi = fmt.Sprintf("%g", v)
		case "both":
			lo, hi = fmt.Sprintf("%g", v), fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(tw, "%d\t%g\t%s\t%s\n", i, v, lo, hi)
	}
	return tw.Flush()
}

func printHistogram(w io.Writer, logger *zap.Logger, signal []float64, maxRadius int) error {
	h, err := peaks.AlternationHistogram(signal, maxRadius)
	if err != nil {
		return err
	}
	logger.Info("histogram computed", zap.Int("maxRadius", maxRadius))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "radius\tmeanLive\tfraction\n")
	for r := 1; r <= h.MaxRadius(); r++ {
		fmt.Fprintf(tw, "%d\t%.1f\t%.4f\n", r, h.MeanLive[r], h.Fraction[r])
	}
	return tw.Flush()
}

func printEstimate(w io.Writer, logger *zap.Logger, signal []float64, maxRadius int) error {
	est, err := scale.EstimateSignal(signal, maxRadius)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mean radius\t%d\n", est.MeanRadius)
	fmt.Fprintf(&b, "natural period\t%g\n", est.NaturalPeriod)
	fmt.Fprintf(&b, "optimal radius\t%d\n", est.OptimalRadius)

	maxLag := min(4*maxRadius, len(signal)-2)
	period, err := scale.AutocorrelationPeriod(signal, 2, maxLag)
	switch {
	case err == nil:
		fmt.Fprintf(&b, "autocorrelation period\t%d\n", period)
	case errors.Is(err, scale.ErrNoEstimate), errors.Is(err, extrema.ErrInvalidInput):
		logger.Warn("autocorrelation period unavailable", zap.Error(err))
	default:
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}
	return tw.Flush()
}
