// Package log defines standard attribute keys for tree and ensemble operations.
//
// The keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") so log lines can be filtered by concern.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "DecisionTreeClassifier", "BaggingClassifier", "RandomForestClassifier"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "export"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct class labels.
	ClassesKey = "data.classes"

	// PathKey records the file a dataset or model was read from or written to.
	PathKey = "data.path"
)

// Tree and Ensemble Structure
const (
	// TreesKey records the number of trees in an ensemble (K).
	TreesKey = "ensemble.trees"

	// ShardKey records the index of an ensemble shard.
	ShardKey = "ensemble.shard"

	// ShardSizeKey records the number of rows in one shard.
	ShardSizeKey = "ensemble.shard_size"

	// OverlapKey records the overlap percentage between shards.
	OverlapKey = "ensemble.overlap_pct"

	// MaxDepthKey records the configured depth limit (0 = unlimited).
	MaxDepthKey = "tree.max_depth"

	// DepthKey records the depth reached by a built tree.
	DepthKey = "tree.depth"

	// NodesKey records the number of nodes in a built tree.
	NodesKey = "tree.nodes"

	// SplitterKey records the split selection mode ("best" or "random").
	SplitterKey = "tree.splitter"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy in [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"
)

// Error Context
const (
	// ErrorKey holds the error message of a failed operation.
	ErrorKey = "error"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by Error when the error carries a stack.
	StacktraceKey = "error.stacktrace"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationExport  = "export"
	OperationLoad    = "load"

	PhaseTraining  = "training"
	PhaseTesting   = "testing"
	PhaseInference = "inference"
)
