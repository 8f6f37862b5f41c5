package ensemble

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/entropyforest/core/dataset"
	"github.com/YuminosukeSato/entropyforest/core/model"
	"github.com/YuminosukeSato/entropyforest/metrics"
	"github.com/YuminosukeSato/entropyforest/pkg/errors"
	"github.com/YuminosukeSato/entropyforest/pkg/log"
	"github.com/YuminosukeSato/entropyforest/sklearn/tree"
)

// Training modes.
const (
	ModeTree    = "tree"
	ModeBagging = "bagging"
	ModeForest  = "forest"
)

// params holds the hyperparameters shared by both ensemble classifiers.
type params struct {
	nEstimators int   // シャード数 K
	overlap     int   // シャード間の重複率 (%)
	maxDepth    int   // 0 は無制限
	randomState int64 // 負の値は非決定的
}

// Option configures an ensemble classifier.
type Option func(*params)

// WithNEstimators sets the number of trees (shards).
func WithNEstimators(n int) Option {
	return func(p *params) {
		p.nEstimators = n
	}
}

// WithOverlap sets the percentage of extra rows each shard borrows from the others.
func WithOverlap(pct int) Option {
	return func(p *params) {
		p.overlap = pct
	}
}

// WithMaxDepth limits the depth of every tree. 0 means unlimited.
func WithMaxDepth(depth int) Option {
	return func(p *params) {
		p.maxDepth = depth
	}
}

// WithRandomState seeds shard partitioning and randomized splits.
func WithRandomState(seed int64) Option {
	return func(p *params) {
		p.randomState = seed
	}
}

// forest is the shared implementation behind BaggingClassifier and
// RandomForestClassifier; they differ only in split selection.
type forest struct {
	state *model.StateManager
	params

	name       string
	mode       string
	randomized bool

	roots  []tree.Node
	logger log.Logger
}

func newForest(name, mode string, randomized bool, opts []Option) forest {
	f := forest{
		state:      model.NewStateManager(),
		params:     params{nEstimators: 10, randomState: -1},
		name:       name,
		mode:       mode,
		randomized: randomized,
	}
	for _, opt := range opts {
		opt(&f.params)
	}
	f.logger = log.GetLoggerWithName("ensemble").With(log.ModelNameKey, name)
	return f
}

// BaggingClassifier trains greedy entropy trees on overlapping row shards
// and predicts by majority vote.
type BaggingClassifier struct {
	forest
}

// NewBaggingClassifier creates a bagging ensemble of 10 unlimited-depth trees
// over disjoint shards.
func NewBaggingClassifier(opts ...Option) *BaggingClassifier {
	return &BaggingClassifier{forest: newForest("BaggingClassifier", ModeBagging, false, opts)}
}

// RandomForestClassifier is a BaggingClassifier whose trees pick each split
// at random from the lowest-gain candidates.
type RandomForestClassifier struct {
	forest
}

// NewRandomForestClassifier creates a random forest of 10 unlimited-depth trees
// over disjoint shards.
func NewRandomForestClassifier(opts ...Option) *RandomForestClassifier {
	return &RandomForestClassifier{forest: newForest("RandomForestClassifier", ModeForest, true, opts)}
}

func (f *forest) validate() error {
	if f.nEstimators < 1 {
		return errors.NewValidationError("n_estimators", "must be >= 1", f.nEstimators)
	}
	if f.overlap < 0 || f.overlap > 100 {
		return errors.NewValidationError("overlap", "must be in [0, 100]", f.overlap)
	}
	if f.maxDepth < 0 {
		return errors.NewValidationError("max_depth", "must be >= 0", f.maxDepth)
	}
	return nil
}

// Fit trains the ensemble from a feature matrix and a label column.
func (f *forest) Fit(X, y mat.Matrix) error {
	ds, err := dataset.FromMatrix(X, y)
	if err != nil {
		return err
	}
	return f.FitDataset(ds)
}

// FitDataset trains the ensemble from an in-memory dataset.
func (f *forest) FitDataset(ds dataset.Dataset) error {
	if err := f.validate(); err != nil {
		return err
	}

	seed := f.randomState
	if seed < 0 {
		seed = time.Now().UnixNano()
	}

	f.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.Len(),
		log.FeaturesKey, ds.NumFeatures(),
		log.TreesKey, f.nEstimators,
		log.OverlapKey, f.overlap,
		log.MaxDepthKey, f.maxDepth,
		log.RandomSeedKey, seed,
	)

	start := time.Now()
	f.state.Reset()
	roots, err := Build(ds, f.nEstimators, f.overlap, tree.BuildOptions{
		MaxDepth:   f.maxDepth,
		Randomized: f.randomized,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		f.logger.Error("Training failed", err, log.OperationKey, log.OperationFit)
		return err
	}
	f.roots = roots

	classes := dataset.Classes(ds.Y)
	f.state.SetFitted(ds.NumFeatures(), ds.Len(), classes)

	f.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.TreesKey, len(roots),
		log.ClassesKey, len(classes),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict classifies every row of X by majority vote and returns an n×1 label column.
func (f *forest) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := f.state.RequireFitted(f.name, "Predict"); err != nil {
		return nil, err
	}
	_, c := X.Dims()
	if err := f.state.RequireFeatures(f.name+".Predict", c); err != nil {
		return nil, err
	}

	labels, err := ClassifyBatch(f.roots, dataset.Rows(X))
	if err != nil {
		f.logger.Error("Prediction failed", err, log.OperationKey, log.OperationPredict)
		return nil, err
	}
	return tree.LabelColumn(labels), nil
}

// PredictOne classifies a single feature vector by majority vote.
func (f *forest) PredictOne(x []float64) (int, error) {
	if err := f.state.RequireFitted(f.name, "PredictOne"); err != nil {
		return 0, err
	}
	if err := f.state.RequireFeatures(f.name+".PredictOne", len(x)); err != nil {
		return 0, err
	}
	return Classify(f.roots, x)
}

// Score returns the accuracy of Predict(X) against y.
func (f *forest) Score(X, y mat.Matrix) (float64, error) {
	pred, err := f.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, pred)
}

// Roots returns the fitted trees ordered by shard index.
func (f *forest) Roots() []tree.Node { return f.roots }

// Classes returns the class labels seen during fitting, ascending.
func (f *forest) Classes() []int { return f.state.GetClasses() }

// Mode returns "bagging" or "forest".
func (f *forest) Mode() string { return f.mode }

// GetParams returns the hyperparameters.
func (f *forest) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_estimators": f.nEstimators,
		"overlap":      f.overlap,
		"max_depth":    f.maxDepth,
		"random_state": f.randomState,
	}
}

// Snapshot captures the fitted ensemble for persistence.
func (f *forest) Snapshot() (*Snapshot, error) {
	if err := f.state.RequireFitted(f.name, "Snapshot"); err != nil {
		return nil, err
	}
	nFeatures, _ := f.state.GetDimensions()
	return &Snapshot{
		Mode:        f.mode,
		NFeatures:   nFeatures,
		Classes:     f.state.GetClasses(),
		MaxDepth:    f.maxDepth,
		NEstimators: f.nEstimators,
		Overlap:     f.overlap,
		Roots:       f.roots,
	}, nil
}

var (
	_ model.Classifier      = (*BaggingClassifier)(nil)
	_ model.Classifier      = (*RandomForestClassifier)(nil)
	_ model.ParameterGetter = (*RandomForestClassifier)(nil)
)
