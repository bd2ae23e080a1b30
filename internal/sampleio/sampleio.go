// Package sampleio reads signal samples from plain text.
//
// Each non-blank line holds one record. Fields are separated by whitespace,
// commas or semicolons, and the selected column (0 by default) is parsed as
// a sample. Lines starting with '#' are comments.
package sampleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmpty is returned when the input holds no samples.
var ErrEmpty = errors.New("sampleio: no samples")

// maxLineBytes bounds a single record; wide exported matrices can exceed
// the bufio.Scanner default.
const maxLineBytes = 4 << 20

type options struct {
	column  int
	float32 bool
}

// Option configures Read.
type Option func(*options)

// WithColumn selects the zero-based column to read.
func WithColumn(column int) Option {
	return func(o *options) {
		o.column = column
	}
}

// WithFloat32 rounds every sample to single precision.
func WithFloat32() Option {
	return func(o *options) {
		o.float32 = true
	}
}

// Read parses samples from r.
func Read(r io.Reader, opts ...Option) ([]float64, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.column < 0 {
		return nil, fmt.Errorf("sampleio: column must be >= 0: %d", o.column)
	}

	var out []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, isSeparator)
		if o.column >= len(fields) {
			return nil, fmt.Errorf("sampleio: line %d: column %d missing (%d fields)", line, o.column, len(fields))
		}
		v, err := strconv.ParseFloat(fields[o.column], 64)
		if err != nil {
			return nil, fmt.Errorf("sampleio: line %d: %w", line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("sampleio: line %d: non-finite sample %q", line, fields[o.column])
		}
		if o.float32 {
			v = float64(float32(v))
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sampleio: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// ReadFile parses samples from the named file, or from stdin when path is
// "-".
func ReadFile(path string, opts ...Option) ([]float64, error) {
	if path == "-" {
		return Read(os.Stdin, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sampleio: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}
