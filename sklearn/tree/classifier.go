package tree

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/core/model"
	"github.com/YuminosukeSato/entropyforest/metrics"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
)

const modelName = "DecisionTreeClassifier"

// Splitter values.
const (
	SplitterBest   = "best"
	SplitterRandom = "random"
)

// DecisionTreeClassifier is an entropy-based decision tree over numeric
// features and integer class labels.
type DecisionTreeClassifier struct {
	state *model.StateManager

	// ハイパーパラメータ
	maxDepth    int    // 0 は無制限
	splitter    string // "best" または "random"
	randomState int64  // 負の値は非決定的

	root   Node
	logger log.Logger
}

// DecisionTreeOption は DecisionTreeClassifier の設定オプション
type DecisionTreeOption func(*DecisionTreeClassifier)

// NewDecisionTreeClassifier creates a classifier with unlimited depth and the
// best-gain splitter.
func NewDecisionTreeClassifier(opts ...DecisionTreeOption) *DecisionTreeClassifier {
	dt := &DecisionTreeClassifier{
		state:       model.NewStateManager(),
		splitter:    SplitterBest,
		randomState: -1,
	}
	for _, opt := range opts {
		opt(dt)
	}
	dt.logger = log.GetLoggerWithName("tree").With(log.ModelNameKey, modelName)
	return dt
}

// WithMaxDepth limits the tree depth. 0 means unlimited.
func WithMaxDepth(depth int) DecisionTreeOption {
	return func(dt *DecisionTreeClassifier) {
		dt.maxDepth = depth
	}
}

// WithSplitter sets the split selection rule: "best" or "random".
func WithSplitter(splitter string) DecisionTreeOption {
	return func(dt *DecisionTreeClassifier) {
		dt.splitter = splitter
	}
}

// WithRandomState seeds the random splitter.
func WithRandomState(seed int64) DecisionTreeOption {
	return func(dt *DecisionTreeClassifier) {
		dt.randomState = seed
	}
}

func (dt *DecisionTreeClassifier) validate() error {
	if dt.maxDepth < 0 {
		return errors.NewValidationError("max_depth", "must be >= 0", dt.maxDepth)
	}
	if dt.splitter != SplitterBest && dt.splitter != SplitterRandom {
		return errors.NewValidationError("splitter", "must be \"best\" or \"random\"", dt.splitter)
	}
	return nil
}

// BuildOptions returns the construction options implied by the hyperparameters.
func (dt *DecisionTreeClassifier) BuildOptions() BuildOptions {
	opts := BuildOptions{MaxDepth: dt.maxDepth}
	if dt.splitter == SplitterRandom {
		seed := dt.randomState
		if seed < 0 {
			seed = time.Now().UnixNano()
		}
		opts.Randomized = true
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	return opts
}

// Fit builds the tree from a feature matrix and a label column.
func (dt *DecisionTreeClassifier) Fit(X, y mat.Matrix) error {
	ds, err := dataset.FromMatrix(X, y)
	if err != nil {
		return err
	}
	return dt.FitDataset(ds)
}

// FitDataset builds the tree from an in-memory dataset.
func (dt *DecisionTreeClassifier) FitDataset(ds dataset.Dataset) error {
	if err := dt.validate(); err != nil {
		return err
	}
	if ds.Len() == 0 {
		return errors.NewModelError(modelName+".Fit", "empty training data", errors.ErrEmptyData)
	}

	start := time.Now()
	dt.state.Reset()
	dt.root = Grow(ds, dt.BuildOptions())

	classes := dataset.Classes(ds.Y)
	dt.state.SetFitted(ds.NumFeatures(), ds.Len(), classes)

	dt.logger.Info("Tree built",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumFeatures(),
		log.ClassesKey, len(classes),
		log.SplitterKey, dt.splitter,
		log.MaxDepthKey, dt.maxDepth,
		log.DepthKey, Depth(dt.root),
		log.NodesKey, Count(dt.root),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict classifies every row of X and returns an n×1 label column.
func (dt *DecisionTreeClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := dt.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	_, c := X.Dims()
	if err := dt.state.RequireFeatures(modelName+".Predict", c); err != nil {
		return nil, err
	}

	labels, err := ClassifyBatch(dt.root, dataset.Rows(X))
	if err != nil {
		dt.logger.Error("Prediction failed", err, log.OperationKey, log.OperationPredict)
		return nil, err
	}
	return LabelColumn(labels), nil
}

// PredictOne classifies a single feature vector.
func (dt *DecisionTreeClassifier) PredictOne(x []float64) (int, error) {
	if err := dt.state.RequireFitted(modelName, "PredictOne"); err != nil {
		return 0, err
	}
	if err := dt.state.RequireFeatures(modelName+".PredictOne", len(x)); err != nil {
		return 0, err
	}
	return Classify(dt.root, x)
}

// Score returns the accuracy of Predict(X) against y.
func (dt *DecisionTreeClassifier) Score(X, y mat.Matrix) (float64, error) {
	pred, err := dt.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Root returns the fitted tree, or nil before Fit.
func (dt *DecisionTreeClassifier) Root() Node { return dt.root }

// Classes returns the class labels seen during fitting, ascending.
func (dt *DecisionTreeClassifier) Classes() []int { return dt.state.GetClasses() }

// NFeatures returns the training width.
func (dt *DecisionTreeClassifier) NFeatures() int {
	n, _ := dt.state.GetDimensions()
	return n
}

// Depth returns the depth of the fitted tree.
func (dt *DecisionTreeClassifier) Depth() int { return Depth(dt.root) }

// NumNodes returns the number of nodes in the fitted tree.
func (dt *DecisionTreeClassifier) NumNodes() int { return Count(dt.root) }

// GetParams returns the hyperparameters.
func (dt *DecisionTreeClassifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"max_depth":    dt.maxDepth,
		"splitter":     dt.splitter,
		"random_state": dt.randomState,
	}
}

// LabelColumn packs labels into an n×1 matrix.
func LabelColumn(labels []int) *mat.Dense {
	if len(labels) == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(labels))
	for i, l := range labels {
		data[i] = float64(l)
	}
	return mat.NewDense(len(labels), 1, data)
}

var (
	_ model.Classifier      = (*DecisionTreeClassifier)(nil)
	_ model.ParameterGetter = (*DecisionTreeClassifier)(nil)
)
