package tree

import (
	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// SplitAt partitions ds on one feature: rows with x[feature] <= threshold go
// left, the others right. Row order and feature/label alignment are preserved.
func SplitAt(ds dataset.Dataset, feature int, threshold float64) (left, right dataset.Dataset) {
	for i, x := range ds.X {
		if x[feature] <= threshold {
			left.X = append(left.X, x)
			left.Y = append(left.Y, ds.Y[i])
		} else {
			right.X = append(right.X, x)
			right.Y = append(right.Y, ds.Y[i])
		}
	}
	return left, right
}

// Entropy is the base-2 Shannon entropy of labels over the given class set.
// Classes absent from labels contribute nothing; empty labels have entropy 0.
func Entropy(labels []int, classes []int) float64 {
	n := float64(len(labels))
	if n == 0 {
		return 0
	}
	counts := dataset.Counts(labels)
	h := 0.0
	for _, c := range classes {
		count, ok := counts[c]
		if !ok {
			continue
		}
		h -= errors.EntropyTerm(float64(count) / n)
	}
	return h
}

// SplitEntropy is the size-weighted entropy of a two-way partition of total rows.
func SplitEntropy(left, right dataset.Dataset, classes []int, total int) float64 {
	h := 0.0
	for _, side := range []dataset.Dataset{left, right} {
		if side.Len() == 0 {
			continue
		}
		weight := errors.SafeDivide(float64(side.Len()), float64(total))
		h += weight * Entropy(side.Y, classes)
	}
	return h
}

// Gain splits ds at (feature, threshold) and returns the information gain
// together with the resulting partition. Gain is never negative; rounding
// residue below zero is clamped.
func Gain(ds dataset.Dataset, classes []int, feature int, threshold float64) (gain float64, left, right dataset.Dataset) {
	left, right = SplitAt(ds, feature, threshold)
	gain = Entropy(ds.Y, classes) - SplitEntropy(left, right, classes, ds.Len())
	if gain < 0 {
		gain = 0
	}
	return gain, left, right
}
