// Package entropyforest grows entropy-based decision trees, bagged tree
// ensembles and random forests for numeric features and integer class labels.
//
// The estimators follow the scikit-learn shape: construct with functional
// options, Fit on a gonum matrix, then Predict or Score.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/entropyforest/sklearn/ensemble"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 5, 0, 5, 1})
//	    y := mat.NewVecDense(4, []float64{0, 0, 1, 1})
//
//	    rf := ensemble.NewRandomForestClassifier(
//	        ensemble.WithNEstimators(2),
//	        ensemble.WithRandomState(42),
//	    )
//	    if err := rf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    label, err := rf.PredictOne([]float64{5, 1})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("class:", label)
//	}
//
// # Packages
//
//   - sklearn/tree: split evaluation, feature selection, the recursive tree
//     builder, classification, node/edge CSV and Graphviz export, and
//     DecisionTreeClassifier
//   - sklearn/ensemble: shard partitioning with overlap, parallel tree
//     construction, majority voting, BaggingClassifier and
//     RandomForestClassifier, and the persisted Snapshot
//   - core/dataset: labeled rows, feature range tables, class sets and
//     train/test splitting
//   - core/model: estimator interfaces, fitted state and gob persistence
//   - core/parallel: CPU-parallel batch helpers and the task fan-out used by
//     ensemble construction
//   - metrics: accuracy and confusion matrices
//   - pkg/errors, pkg/log: structured errors and zerolog-backed logging
//   - pkg/config, pkg/dataio, pkg/chart: run settings, data file loading and
//     accuracy charts for the entropyforest command
//
// # Split Criterion
//
// Every node scans five evenly spaced thresholds across each remaining
// feature's observed range and keeps the split with the highest information
// gain (base-2 entropy). A feature is used at most once on any root-to-leaf
// path. Random forests replace the greedy choice with a uniform draw from the
// floor(sqrt(n)) + 1 lowest-gain candidates.
//
// # Error Handling
//
// Errors carry stack traces from github.com/cockroachdb/errors and can be
// inspected with errors.As:
//
//	var notFitted *errors.NotFittedError
//	if errors.As(err, &notFitted) {
//	    // Fit was never called
//	}
package entropyforest
