package sampleio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSingleColumn(t *testing.T) {
	in := "# ppg\n0\n2.5\n\n-8e-1\n  3  \n"
	got, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, -0.8, 3}, got)
}

func TestReadColumn(t *testing.T) {
	in := "1, 10; 100\n2\t20 200\n3,30,300\n"
	got, err := Read(strings.NewReader(in), WithColumn(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, got)
}

func TestReadFloat32(t *testing.T) {
	got, err := Read(strings.NewReader("0.1\n"), WithFloat32())
	require.NoError(t, err)
	assert.Equal(t, float64(float32(0.1)), got[0])
	assert.NotEqual(t, 0.1, got[0])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		msg  string
	}{
		{"malformed", "1\nabc\n", nil, "line 2"},
		{"nan", "1\nNaN\n", nil, "non-finite"},
		{"inf", "+Inf\n", nil, "non-finite"},
		{"missing column", "1 2\n3\n", []Option{WithColumn(1)}, "line 2: column 1 missing"},
		{"negative column", "1\n", []Option{WithColumn(-1)}, "column must be >= 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("# nothing\n\n"))
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signal.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0o600))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
