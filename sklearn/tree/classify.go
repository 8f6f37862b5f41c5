package tree

import (
	"github.com/YuminosukeSato/entropyforest/core/parallel"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
)

// parallelThreshold is the batch size below which rows are classified sequentially.
const parallelThreshold = 1000

// Classify walks root for one feature vector and returns the leaf class.
// Reaching an empty subtree before a leaf is an InconsistentTreeError.
func Classify(root Node, x []float64) (int, error) {
	if root == nil {
		return 0, errors.NewInconsistentTreeError(0, -1, 0, "root")
	}

	node := root
	for depth := 0; ; depth++ {
		switch n := node.(type) {
		case *Leaf:
			return n.Class, nil
		case *Split:
			if n.Feature >= len(x) {
				return 0, errors.NewDimensionError("tree.Classify", n.Feature+1, len(x), 1)
			}
			next, branch := n.Left, "left"
			if x[n.Feature] > n.Threshold {
				next, branch = n.Right, "right"
			}
			if next == nil {
				return 0, errors.NewInconsistentTreeError(depth, n.Feature, n.Threshold, branch)
			}
			node = next
		default:
			return 0, errors.NewInconsistentTreeError(depth, -1, 0, "unknown")
		}
	}
}

// ClassifyBatch classifies every row of X. Large batches are split across CPU
// cores; the tree is only read. The error of the first failing row is returned.
func ClassifyBatch(root Node, X [][]float64) ([]int, error) {
	labels := make([]int, len(X))
	errs := make([]error, len(X))

	parallel.ParallelizeWithThreshold(len(X), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			labels[i], errs[i] = Classify(root, X[i])
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
	}
	return labels, nil
}
