// Package dataset holds labeled tabular data for tree construction: the
// feature matrix and label vector, per-subset feature range tables, class
// sets, majority voting and train/test splitting.
//
// A Dataset is treated as immutable. Partitioning produces fresh Datasets
// that share the underlying row slices read-only.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// Sample is one feature vector with its integer class label.
type Sample struct {
	Features []float64
	Label    int
}

// Dataset pairs feature vectors with labels. X[i] and Y[i] always describe the same sample.
type Dataset struct {
	X [][]float64
	Y []int
}

// New validates alignment and shape and returns a Dataset over X and Y.
func New(X [][]float64, Y []int) (Dataset, error) {
	if len(X) != len(Y) {
		return Dataset{}, errors.NewDimensionError("dataset.New", len(X), len(Y), 0)
	}
	if len(X) > 0 {
		width := len(X[0])
		for i, row := range X {
			if len(row) != width {
				return Dataset{}, errors.NewDimensionError("dataset.New", width, len(row), 1)
			}
			for j, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return Dataset{}, errors.NewValueError("dataset.New",
						fmt.Sprintf("non-finite feature value at row %d, feature %d", i, j))
				}
			}
		}
	}
	return Dataset{X: X, Y: Y}, nil
}

// FromSamples builds a Dataset from parsed samples.
func FromSamples(samples []Sample) (Dataset, error) {
	X := make([][]float64, len(samples))
	Y := make([]int, len(samples))
	for i, s := range samples {
		X[i] = s.Features
		Y[i] = s.Label
	}
	return New(X, Y)
}

// FromMatrix converts an estimator-style (X, y) pair. y must be a single column
// of integral values.
func FromMatrix(X, y mat.Matrix) (Dataset, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return Dataset{}, errors.NewModelError("dataset.FromMatrix", "empty data", errors.ErrEmptyData)
	}
	ry, cy := y.Dims()
	if ry != r {
		return Dataset{}, errors.NewDimensionError("dataset.FromMatrix", r, ry, 0)
	}
	if cy != 1 {
		return Dataset{}, errors.NewValueError("dataset.FromMatrix", "y must be a column vector")
	}

	labels := make([]int, r)
	for i := 0; i < r; i++ {
		v := y.At(i, 0)
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return Dataset{}, errors.NewValueError("dataset.FromMatrix", "class labels must be integers")
		}
		labels[i] = int(v)
	}
	return New(Rows(X), labels)
}

// Rows copies the rows of a matrix into fresh slices.
func Rows(X mat.Matrix) [][]float64 {
	r, c := X.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		rows[i] = row
	}
	return rows
}

// Matrix returns the dataset as a feature matrix and a label vector.
func (d Dataset) Matrix() (*mat.Dense, *mat.VecDense) {
	n, c := d.Len(), d.NumFeatures()
	if n == 0 || c == 0 {
		return nil, nil
	}
	X := mat.NewDense(n, c, nil)
	y := mat.NewVecDense(n, nil)
	for i, row := range d.X {
		X.SetRow(i, row)
		y.SetVec(i, float64(d.Y[i]))
	}
	return X, y
}

// Len returns the number of samples.
func (d Dataset) Len() int { return len(d.Y) }

// NumFeatures returns the width of the feature vectors, or 0 for an empty dataset.
func (d Dataset) NumFeatures() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// At returns sample i.
func (d Dataset) At(i int) Sample {
	return Sample{Features: d.X[i], Label: d.Y[i]}
}

// Subset returns the rows at idx, in that order. Rows may repeat.
func (d Dataset) Subset(idx []int) Dataset {
	out := Dataset{X: make([][]float64, len(idx)), Y: make([]int, len(idx))}
	for k, i := range idx {
		out.X[k] = d.X[i]
		out.Y[k] = d.Y[i]
	}
	return out
}

// Clone returns a deep copy that shares no memory with d.
func (d Dataset) Clone() Dataset {
	out := Dataset{X: make([][]float64, len(d.X)), Y: make([]int, len(d.Y))}
	for i, row := range d.X {
		out.X[i] = append([]float64(nil), row...)
	}
	copy(out.Y, d.Y)
	return out
}

// Range is the observed [Min, Max] of one feature.
type Range struct {
	Min float64
	Max float64
}

// Ranges maps feature index to its observed range within one dataset subset.
type Ranges map[int]Range

// FeatureRanges computes the range table of the given features over d.
// An empty dataset yields an empty table.
func FeatureRanges(d Dataset, features []int) Ranges {
	ranges := make(Ranges, len(features))
	if d.Len() == 0 {
		return ranges
	}
	column := make([]float64, d.Len())
	for _, f := range features {
		for i, row := range d.X {
			column[i] = row[f]
		}
		ranges[f] = Range{Min: floats.Min(column), Max: floats.Max(column)}
	}
	return ranges
}

// Classes returns the distinct labels, sorted ascending.
func Classes(labels []int) []int {
	set := hashset.New()
	for _, y := range labels {
		set.Add(y)
	}
	classes := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		classes = append(classes, v.(int))
	}
	sort.Ints(classes)
	return classes
}

// Counts returns the number of occurrences of every label.
func Counts(labels []int) map[int]int {
	counts := make(map[int]int)
	for _, y := range labels {
		counts[y]++
	}
	return counts
}

// Majority returns the most frequent label. Among labels sharing the highest
// count the largest label value wins. ok is false for an empty input.
func Majority(labels []int) (label int, ok bool) {
	if len(labels) == 0 {
		return 0, false
	}
	best, bestCount := 0, -1
	for y, n := range Counts(labels) {
		if n > bestCount || (n == bestCount && y > best) {
			best, bestCount = y, n
		}
	}
	return best, true
}

// AllFeatures returns the feature indices 0..n-1.
func AllFeatures(n int) []int {
	features := make([]int, n)
	for i := range features {
		features[i] = i
	}
	return features
}

// TrainTestSplit draws floor(N*ratio/100) rows at random, without replacement,
// into the training set; the remaining rows form the test set in their
// original order.
func TrainTestSplit(d Dataset, ratio float64, rng *rand.Rand) (train, test Dataset, err error) {
	if ratio <= 0 || ratio >= 100 {
		return Dataset{}, Dataset{}, errors.NewValidationError("train_ratio", "must be in (0, 100)", ratio)
	}
	n := d.Len()
	trainSize := int(float64(n) * ratio / 100)
	if trainSize < 1 || trainSize >= n {
		return Dataset{}, Dataset{}, errors.NewValueError("dataset.TrainTestSplit",
			fmt.Sprintf("split leaves an empty training or test set for %d rows", n))
	}

	perm := rng.Perm(n)
	inTrain := make([]bool, n)
	for _, i := range perm[:trainSize] {
		inTrain[i] = true
	}
	testIdx := make([]int, 0, n-trainSize)
	for i := 0; i < n; i++ {
		if !inTrain[i] {
			testIdx = append(testIdx, i)
		}
	}
	return d.Subset(perm[:trainSize]), d.Subset(testIdx), nil
}
