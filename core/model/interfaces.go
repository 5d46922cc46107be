package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for models that learn from labeled data.
type Fitter interface {
	// Fit trains the model on X with targets y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that predict labels for input data.
type Predictor interface {
	// Predict returns predicted labels for X as an (n_samples, 1) matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the mean accuracy of the predictions on X against y.
	Score(X, y mat.Matrix) (float64, error)
}

// Transformer is the interface for data transformations.
type Transformer interface {
	// Fit learns the parameters required for the transformation.
	Fit(X mat.Matrix) error

	// Transform applies the transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and returns the transformed X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// LinearClassifier is the contract a classifier must satisfy to be
// injected into an RFClassifier. It is the explicit form of the
// sklearn-style duck-typed collaborator: fit, predict, score, and
// accessors for the learned decision function.
type LinearClassifier interface {
	Fitter
	Predictor
	Scorer

	// Coef returns the learned coefficients, one row per class
	// (a single row for binary problems). Nil before fitting.
	Coef() [][]float64

	// Intercept returns the learned intercept terms, one per class
	// (a single value for binary problems). Nil before fitting.
	Intercept() []float64
}
