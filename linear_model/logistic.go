// Package linear_model provides linear classifiers that can be
// injected into an RFClassifier: logistic regression and a linear
// support vector classifier. Both satisfy model.LinearClassifier.
package linear_model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/core/model"
	"github.com/YuminosukeSato/randfeat/metrics"
	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// LogisticRegression implements logistic regression for classification.
// Binary problems use a single weight vector; multiclass problems are
// handled one-vs-rest.
type LogisticRegression struct {
	state *model.StateManager

	// Hyperparameters
	penalty      string  // Regularization: "l2", "none"
	c            float64 // Inverse regularization strength (1/alpha)
	fitIntercept bool    // Whether to fit intercept
	randomState  int64   // Random seed
	maxIter      int     // Maximum iterations
	tol          float64 // Tolerance for stopping

	// Model parameters
	coef      [][]float64 // (n_classes x n_features), 1 x n_features for binary
	intercept []float64   // Intercept terms
	classes   []int       // Unique class labels, sorted
	nFeatures int

	rng *rand.Rand
}

// LogisticRegressionOption is a functional option for LogisticRegression.
type LogisticRegressionOption func(*LogisticRegression)

// NewLogisticRegression creates a new LogisticRegression classifier.
func NewLogisticRegression(opts ...LogisticRegressionOption) *LogisticRegression {
	lr := &LogisticRegression{
		state:        model.NewStateManager(),
		penalty:      "l2",
		c:            1.0,
		fitIntercept: true,
		randomState:  -1,
		maxIter:      100,
		tol:          1e-4,
	}

	for _, opt := range opts {
		opt(lr)
	}

	if lr.randomState >= 0 {
		lr.rng = rand.New(rand.NewSource(lr.randomState))
	} else {
		lr.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return lr
}

// WithLRPenalty sets the regularization type ("l2" or "none").
func WithLRPenalty(penalty string) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.penalty = penalty
	}
}

// WithLRC sets the inverse regularization strength.
func WithLRC(c float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.c = c
	}
}

// WithLRFitIntercept sets whether to fit an intercept term.
func WithLRFitIntercept(fit bool) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.fitIntercept = fit
	}
}

// WithLRMaxIter sets the maximum number of iterations.
func WithLRMaxIter(maxIter int) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.maxIter = maxIter
	}
}

// WithLRTol sets the tolerance for the stopping criterion.
func WithLRTol(tol float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.tol = tol
	}
}

// WithLRRandomState sets the random seed for weight initialization.
func WithLRRandomState(seed int64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.randomState = seed
		if seed >= 0 {
			lr.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// Fit trains the logistic regression model.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples != yRows {
		return errors.NewDimensionError("LogisticRegression.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("LogisticRegression.Fit", "y must be a column vector")
	}

	lr.classes = extractClasses(y)
	lr.nFeatures = nFeatures
	lr.initializeWeights(nFeatures)

	if len(lr.classes) == 2 {
		// Binary: learn a single separating hyperplane against class 1
		target := binaryTargets(y, lr.classes[1])
		lr.descend(X, target, 0)
	} else {
		// One-vs-rest
		for classIdx, class := range lr.classes {
			target := binaryTargets(y, class)
			lr.descend(X, target, classIdx)
		}
	}

	lr.state.SetFitted()
	lr.state.SetDimensions(nFeatures, nSamples)
	return nil
}

// initializeWeights initializes coefficients with small random values.
func (lr *LogisticRegression) initializeWeights(nFeatures int) {
	nSets := 1
	if len(lr.classes) > 2 {
		nSets = len(lr.classes)
	}

	lr.coef = make([][]float64, nSets)
	lr.intercept = make([]float64, nSets)
	for i := range lr.coef {
		lr.coef[i] = make([]float64, nFeatures)
		for j := range lr.coef[i] {
			lr.coef[i][j] = lr.rng.NormFloat64() * 0.01
		}
	}
}

// descend runs gradient descent on the logistic loss for one weight set.
func (lr *LogisticRegression) descend(X mat.Matrix, target []float64, setIdx int) {
	nSamples, nFeatures := X.Dims()
	weights := lr.coef[setIdx]
	intercept := &lr.intercept[setIdx]

	const baseLearningRate = 1.0
	converged := false

	for iter := 0; iter < lr.maxIter; iter++ {
		gradWeights := make([]float64, nFeatures)
		gradIntercept := 0.0

		for i := 0; i < nSamples; i++ {
			z := *intercept
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * weights[j]
			}
			residual := sigmoid(z) - target[i]
			gradIntercept += residual
			for j := 0; j < nFeatures; j++ {
				gradWeights[j] += residual * X.At(i, j)
			}
		}

		for j := range gradWeights {
			gradWeights[j] /= float64(nSamples)
		}
		gradIntercept /= float64(nSamples)

		if lr.penalty == "l2" {
			lambda := 1.0 / lr.c
			for j := range weights {
				gradWeights[j] += lambda * weights[j] / float64(nSamples)
			}
		}

		learningRate := baseLearningRate / (1.0 + 0.1*float64(iter))

		for j := range weights {
			weights[j] -= learningRate * gradWeights[j]
		}
		if lr.fitIntercept {
			*intercept -= learningRate * gradIntercept
		}

		maxGrad := math.Abs(gradIntercept)
		for _, g := range gradWeights {
			if math.Abs(g) > maxGrad {
				maxGrad = math.Abs(g)
			}
		}
		if maxGrad < lr.tol {
			converged = true
			break
		}
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", lr.maxIter, ""))
	}
}

// Predict returns the predicted class labels for X.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.Predict", lr.nFeatures, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)

	if len(lr.classes) == 2 {
		for i := 0; i < nSamples; i++ {
			z := lr.intercept[0]
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * lr.coef[0][j]
			}
			if sigmoid(z) >= 0.5 {
				predictions.Set(i, 0, float64(lr.classes[1]))
			} else {
				predictions.Set(i, 0, float64(lr.classes[0]))
			}
		}
		return predictions, nil
	}

	for i := 0; i < nSamples; i++ {
		bestScore := math.Inf(-1)
		bestClass := 0
		for classIdx := range lr.classes {
			score := lr.intercept[classIdx]
			for j := 0; j < nFeatures; j++ {
				score += X.At(i, j) * lr.coef[classIdx][j]
			}
			if score > bestScore {
				bestScore = score
				bestClass = classIdx
			}
		}
		predictions.Set(i, 0, float64(lr.classes[bestClass]))
	}
	return predictions, nil
}

// PredictProba returns probability estimates for each class.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !lr.state.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.nFeatures, nFeatures, 1)
	}

	nClasses := len(lr.classes)
	probas := mat.NewDense(nSamples, nClasses, nil)

	if nClasses == 2 {
		for i := 0; i < nSamples; i++ {
			z := lr.intercept[0]
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * lr.coef[0][j]
			}
			p := sigmoid(z)
			probas.Set(i, 0, 1-p)
			probas.Set(i, 1, p)
		}
		return probas, nil
	}

	// Softmax over per-class decision scores
	for i := 0; i < nSamples; i++ {
		scores := make([]float64, nClasses)
		maxScore := math.Inf(-1)
		for classIdx := range lr.classes {
			score := lr.intercept[classIdx]
			for j := 0; j < nFeatures; j++ {
				score += X.At(i, j) * lr.coef[classIdx][j]
			}
			scores[classIdx] = score
			if score > maxScore {
				maxScore = score
			}
		}
		sum := 0.0
		for classIdx := range scores {
			scores[classIdx] = math.Exp(scores[classIdx] - maxScore)
			sum += scores[classIdx]
		}
		for classIdx := range scores {
			probas.Set(i, classIdx, scores[classIdx]/sum)
		}
	}
	return probas, nil
}

// Score returns the mean accuracy on the given test data and labels.
func (lr *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, predictions)
}

// Coef returns a copy of the learned coefficients, one row per class.
func (lr *LogisticRegression) Coef() [][]float64 {
	return copyCoef(lr.coef)
}

// Intercept returns a copy of the learned intercept terms.
func (lr *LogisticRegression) Intercept() []float64 {
	return copyVec(lr.intercept)
}

// Classes returns the unique classes seen during fitting, sorted ascending.
func (lr *LogisticRegression) Classes() []int {
	out := make([]int, len(lr.classes))
	copy(out, lr.classes)
	return out
}

// sigmoid computes the logistic function with overflow protection.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + errors.StabilizeExp(-z))
}
