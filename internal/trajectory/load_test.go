package trajectory

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rows in the integrator's "%lf %lf %lf %lf \n" format.
const sample = `0.000000 14.142136 0.000000 14.142136 
5.000000 14.100000 0.400000 14.050000 
10.000000 13.900000 0.810000 13.700000 
15.000000 13.500000 1.200000 13.100000 
`

func TestParsePreservesRowOrder(t *testing.T) {
	tr, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Equal(t, 4, tr.Len())
	assert.Len(t, tr.X, 4)
	assert.Len(t, tr.Y, 4)
	assert.Len(t, tr.Z, 4)

	assert.Equal(t, []float64{0, 5, 10, 15}, tr.Tau)
	assert.Equal(t, []float64{14.142136, 14.1, 13.9, 13.5}, tr.X)
	assert.Equal(t, []float64{0, 0.4, 0.81, 1.2}, tr.Y)
	assert.Equal(t, []float64{14.142136, 14.05, 13.7, 13.1}, tr.Z)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	in := "# tau x y z\n\n1 2 3 4\n   \n\t5 6 7 8\n"
	tr, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, tr.Tau)
	assert.Equal(t, []float64{4, 8}, tr.Z)
}

func TestParseTrailingComments(t *testing.T) {
	in := "1 2 3 4 # start\n5 6 7 8#no space\n# 9 9 9\n"
	tr, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, tr.Tau)
	assert.Equal(t, []float64{4, 8}, tr.Z)
}

func TestParseNaN(t *testing.T) {
	tr, err := Parse(strings.NewReader("nan 10 0 10\n1 9 1 9\n"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tr.Tau[0]))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
		line   int
		column int
	}{
		{"three fields", "0 1 2 3\n1 2 3\n", ErrColumnCount, 2, 0},
		{"five fields", "0 1 2 3 4\n", ErrColumnCount, 1, 0},
		{"not a number", "0 1 2 3\n1 2 x 4\n", ErrMalformed, 2, 3},
		{"comment then bad", "# header\n0 1 2 3\n\n0 nan? 1 2\n", ErrMalformed, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, tr)
			assert.ErrorIs(t, err, tt.target)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n# nothing\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodesic.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrColumnCount)
	assert.Contains(t, err.Error(), "bad.txt")
	assert.Contains(t, err.Error(), "line 1")
}

func TestTauRange(t *testing.T) {
	tr := &Trajectory{Tau: []float64{3, -1.5, 7.25, 2}}
	lo, hi := tr.TauRange()
	assert.Equal(t, -1.5, lo)
	assert.Equal(t, 7.25, hi)

	tr.Tau[2] = math.NaN()
	lo, hi = tr.TauRange()
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))

	lo, hi = (&Trajectory{}).TauRange()
	assert.Zero(t, lo)
	assert.Zero(t, hi)
}

func TestRadiusAndHorizon(t *testing.T) {
	tr := &Trajectory{
		Tau: []float64{0, 1, 2},
		X:   []float64{3, 0, 1},
		Y:   []float64{4, 2.5, 0},
		Z:   []float64{0, 0, 1},
	}
	assert.InDelta(t, 5.0, tr.Radius(0), 1e-12)
	assert.InDelta(t, math.Sqrt2, tr.Radius(2), 1e-12)

	lo, hi := tr.RadiusRange()
	assert.InDelta(t, math.Sqrt2, lo, 1e-12)
	assert.InDelta(t, 5.0, hi, 1e-12)

	i, ok := tr.CrossesHorizon(2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = tr.CrossesHorizon(1)
	assert.False(t, ok)
}
