package ensemble

import (
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/sklearn/tree"
)

// Snapshot is the persisted form of a trained model. A single decision tree
// is stored as a one-tree snapshot in ModeTree, which predicts the same
// labels as the tree itself.
type Snapshot struct {
	Mode        string
	NFeatures   int
	Classes     []int
	MaxDepth    int
	NEstimators int
	Overlap     int
	Roots       []tree.Node
}

// TreeSnapshot captures a fitted decision tree.
func TreeSnapshot(dt *tree.DecisionTreeClassifier) (*Snapshot, error) {
	if dt.Root() == nil {
		return nil, errors.NewNotFittedError("DecisionTreeClassifier", "Snapshot")
	}
	depth, _ := dt.GetParams()["max_depth"].(int)
	return &Snapshot{
		Mode:        ModeTree,
		NFeatures:   dt.NFeatures(),
		Classes:     dt.Classes(),
		MaxDepth:    depth,
		NEstimators: 1,
		Roots:       []tree.Node{dt.Root()},
	}, nil
}

// Predict classifies one feature vector.
func (s *Snapshot) Predict(x []float64) (int, error) {
	if len(x) != s.NFeatures {
		return 0, errors.NewDimensionError("Snapshot.Predict", s.NFeatures, len(x), 1)
	}
	return Classify(s.Roots, x)
}

// PredictBatch classifies every row of X.
func (s *Snapshot) PredictBatch(X [][]float64) ([]int, error) {
	for i, x := range X {
		if len(x) != s.NFeatures {
			return nil, errors.Wrapf(errors.NewDimensionError("Snapshot.PredictBatch", s.NFeatures, len(x), 1), "row %d", i)
		}
	}
	return ClassifyBatch(s.Roots, X)
}
