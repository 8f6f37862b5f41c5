package ensemble

import (
	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/core/parallel"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/sklearn/tree"
)

const parallelThreshold = 1000

// Vote returns the most frequent label; ties go to the largest label.
// An empty vote returns 0.
func Vote(labels []int) int {
	label, _ := dataset.Majority(labels)
	return label
}

// Classify runs x through every tree and returns the majority vote.
func Classify(roots []tree.Node, x []float64) (int, error) {
	if len(roots) == 0 {
		return 0, errors.NewModelError("ensemble.Classify", "no trees", errors.ErrEmptyData)
	}
	votes := make([]int, len(roots))
	for i, root := range roots {
		label, err := tree.Classify(root, x)
		if err != nil {
			return 0, errors.Wrapf(err, "tree %d", i)
		}
		votes[i] = label
	}
	return Vote(votes), nil
}

// ClassifyBatch classifies every row of X by majority vote.
func ClassifyBatch(roots []tree.Node, X [][]float64) ([]int, error) {
	labels := make([]int, len(X))
	errs := make([]error, len(X))

	parallel.ParallelizeWithThreshold(len(X), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			labels[i], errs[i] = Classify(roots, X[i])
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}
	return labels, nil
}
