// Package log defines standard attribute keys for machine learning operations.
//
// Using these standard keys keeps log output consistent across the
// library and enables structured filtering (e.g. all "fit" operations
// of a given model).
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "RFClassifier", "LogisticRegression", "LinearSVC"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score", "generate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "classifier", "weights", "evaluation"
	ComponentKey = "ml.component"

	// GeneratorKey identifies the weight generator variant in use.
	// Examples: "white_noise", "spectral", "receptive_field"
	GeneratorKey = "weights.generator"

	// RandomStateKey records the seed used for weight generation.
	RandomStateKey = "model.random_state"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// WidthKey indicates the number of random directions of the feature map.
	WidthKey = "model.width"
)

// Evaluation Metrics
const (
	// TrialsKey indicates the number of independent trials in a harness run.
	TrialsKey = "eval.trials"

	// TrainScoreKey records the mean training accuracy of a harness run.
	TrainScoreKey = "eval.train_score"

	// TestScoreKey records the mean test accuracy of a harness run.
	TestScoreKey = "eval.test_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
