package dataset

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		X       [][]float64
		Y       []int
		wantErr bool
	}{
		{name: "aligned", X: [][]float64{{1, 2}, {3, 4}}, Y: []int{0, 1}},
		{name: "empty", X: nil, Y: nil},
		{name: "label count mismatch", X: [][]float64{{1, 2}}, Y: []int{0, 1}, wantErr: true},
		{name: "ragged rows", X: [][]float64{{1, 2}, {3}}, Y: []int{0, 1}, wantErr: true},
		{name: "NaN feature", X: [][]float64{{math.NaN()}}, Y: []int{0}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.X, tt.Y)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromMatrix(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 0, 1, 1, 5, 0})
	y := mat.NewDense(3, 1, []float64{0, 0, 1})

	d, err := FromMatrix(X, y)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, d.NumFeatures())
	assert.Equal(t, []int{0, 0, 1}, d.Y)
	assert.Equal(t, []float64{5, 0}, d.X[2])

	_, err = FromMatrix(X, mat.NewDense(3, 1, []float64{0, 0.5, 1}))
	assert.Error(t, err, "fractional labels must be rejected")

	_, err = FromMatrix(X, mat.NewDense(2, 1, []float64{0, 1}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	Xm, ym := d.Matrix()
	r, c := Xm.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.0, ym.AtVec(2))
}

func TestFeatureRanges(t *testing.T) {
	d := Dataset{
		X: [][]float64{{1, 10}, {5, -2}, {3, 4}},
		Y: []int{0, 1, 0},
	}
	ranges := FeatureRanges(d, []int{0, 1})
	assert.Equal(t, Range{Min: 1, Max: 5}, ranges[0])
	assert.Equal(t, Range{Min: -2, Max: 10}, ranges[1])

	only := FeatureRanges(d, []int{1})
	_, has0 := only[0]
	assert.False(t, has0)

	assert.Empty(t, FeatureRanges(Dataset{}, []int{0, 1}))
}

func TestClasses(t *testing.T) {
	assert.Equal(t, []int{-1, 2, 7}, Classes([]int{7, 2, 7, -1, 2}))
	assert.Empty(t, Classes(nil))
}

func TestMajority(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		want   int
		ok     bool
	}{
		{name: "clear winner", labels: []int{1, 1, 0}, want: 1, ok: true},
		{name: "tie picks larger label", labels: []int{3, 8, 3, 8}, want: 8, ok: true},
		{name: "tie among three", labels: []int{2, 0, 1}, want: 2, ok: true},
		{name: "count beats label value", labels: []int{9, 0, 0}, want: 0, ok: true},
		{name: "empty", labels: nil, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Majority(tt.labels)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSubsetAndClone(t *testing.T) {
	d := Dataset{X: [][]float64{{1}, {2}, {3}}, Y: []int{0, 1, 2}}

	sub := d.Subset([]int{2, 2, 0})
	assert.Equal(t, []int{2, 2, 0}, sub.Y)
	assert.Equal(t, 3.0, sub.X[1][0])

	c := d.Clone()
	c.X[0][0] = 99
	c.Y[0] = 99
	assert.Equal(t, 1.0, d.X[0][0], "clone must not alias the source rows")
	assert.Equal(t, 0, d.Y[0])
}

func TestTrainTestSplit(t *testing.T) {
	n := 20
	X := make([][]float64, n)
	Y := make([]int, n)
	for i := range X {
		X[i] = []float64{float64(i)}
		Y[i] = i
	}
	d, err := New(X, Y)
	require.NoError(t, err)

	train, test, err := TrainTestSplit(d, 90, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 18, train.Len())
	assert.Equal(t, 2, test.Len())

	seen := make(map[int]bool)
	for _, y := range append(append([]int{}, train.Y...), test.Y...) {
		assert.False(t, seen[y], "row %d used twice", y)
		seen[y] = true
	}
	assert.Len(t, seen, n)

	_, _, err = TrainTestSplit(d, 100, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	_, _, err = TrainTestSplit(Dataset{X: [][]float64{{1}}, Y: []int{0}}, 50, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestAllFeatures(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, AllFeatures(3))
	assert.Empty(t, AllFeatures(0))
}
