package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBars(t *testing.T) {
	bars := TreeBars([]float64{0.5, 0.75}, 0.8)
	assert.Equal(t, []Bar{
		{Label: "tree 0", Accuracy: 0.5},
		{Label: "tree 1", Accuracy: 0.75},
		{Label: "ensemble", Accuracy: 0.8},
	}, bars)
}

func TestAccuracy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acc.png")
	require.NoError(t, Accuracy("forest", TreeBars([]float64{0.9, 0.7, 0.8}, 0.85), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, Accuracy("empty", nil, path))
}
