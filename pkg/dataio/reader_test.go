package dataio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/entropyforest/pkg/config"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		separator string
		input     string
	}{
		{"comma", config.SeparatorComma, "1.5,2,0\n3, 4.25,1\n\n5,6,1\n"},
		{"space", config.SeparatorSpace, "1.5 2 0\n3\t4.25   1\n\n  5 6 1  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.input), tt.separator)
			require.NoError(t, err)
			assert.Equal(t, [][]float64{{1.5, 2}, {3, 4.25}, {5, 6}}, ds.X)
			assert.Equal(t, []int{0, 1, 1}, ds.Y)
		})
	}
}

func TestRead_MalformedRows(t *testing.T) {
	tests := []struct {
		name      string
		separator string
		input     string
		line      int
		field     int
	}{
		{"bad feature", config.SeparatorSpace, "1 2 0\n1 x 0\n", 2, 1},
		{"bad label", config.SeparatorComma, "1,2,0\n\n1,2,a\n", 3, 2},
		{"fractional label", config.SeparatorSpace, "1 2 0.5\n", 1, 2},
		{"ragged row", config.SeparatorComma, "1,2,0\n1,0\n", 2, -1},
		{"label only", config.SeparatorSpace, "3\n", 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.separator)
			var ferr *errors.DataFormatError
			require.True(t, errors.As(err, &ferr), "got %v", err)
			assert.Equal(t, tt.line, ferr.Line)
			assert.Equal(t, tt.field, ferr.Field)
		})
	}
}

func TestRead_EmptyAndUnknownSeparator(t *testing.T) {
	_, err := Read(strings.NewReader("\n\n"), config.SeparatorSpace)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, err = Read(strings.NewReader("1 0\n"), "tab")
	var verr *errors.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0 1\n1 1 2\n"), 0o600))

	ds, err := Load(path, config.SeparatorSpace)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.NumFeatures())

	_, err = Load(filepath.Join(t.TempDir(), "nope.txt"), config.SeparatorSpace)
	assert.Error(t, err)
}
