package model

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

type snapshot struct {
	Name    string
	Classes []int
	Weights map[int]float64
}

func TestSaveLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	in := snapshot{Name: "tree", Classes: []int{0, 3}, Weights: map[int]float64{1: 0.5}}

	require.NoError(t, SaveModel(in, path))

	var out snapshot
	require.NoError(t, LoadModel(&out, path))
	assert.Equal(t, in, out)
}

func TestLoadModelErrors(t *testing.T) {
	var out snapshot
	assert.Error(t, LoadModel(&out, filepath.Join(t.TempDir(), "missing.gob")))
	assert.Error(t, LoadModelFromReader(&out, bytes.NewBufferString("not gob")))
}

func TestStateManager(t *testing.T) {
	s := NewStateManager()
	assert.False(t, s.IsFitted())

	err := s.RequireFitted("DecisionTreeClassifier", "Predict")
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Predict", nf.Method)

	classes := []int{0, 1}
	s.SetFitted(4, 100, classes)
	classes[0] = 42
	assert.True(t, s.IsFitted())
	assert.Equal(t, []int{0, 1}, s.GetClasses(), "classes must be copied on SetFitted")

	nFeatures, nSamples := s.GetDimensions()
	assert.Equal(t, 4, nFeatures)
	assert.Equal(t, 100, nSamples)

	assert.NoError(t, s.RequireFeatures("Predict", 4))
	assert.Error(t, s.RequireFeatures("Predict", 3))

	s.Reset()
	assert.False(t, s.IsFitted())
	assert.Nil(t, s.GetClasses())
}
