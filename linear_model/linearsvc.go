package linear_model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/core/model"
	"github.com/YuminosukeSato/randfeat/metrics"
	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// LinearSVC implements a linear support vector classifier trained with
// subgradient descent on the L2-regularized hinge loss. Binary
// problems use a single weight vector; multiclass problems are handled
// one-vs-rest.
type LinearSVC struct {
	state *model.StateManager

	// Hyperparameters
	c            float64 // Inverse regularization strength
	fitIntercept bool
	randomState  int64
	maxIter      int
	tol          float64

	// Model parameters
	coef      [][]float64
	intercept []float64
	classes   []int
	nFeatures int

	rng *rand.Rand
}

// LinearSVCOption is a functional option for LinearSVC.
type LinearSVCOption func(*LinearSVC)

// NewLinearSVC creates a new LinearSVC classifier.
func NewLinearSVC(opts ...LinearSVCOption) *LinearSVC {
	svc := &LinearSVC{
		state:        model.NewStateManager(),
		c:            1.0,
		fitIntercept: true,
		randomState:  -1,
		maxIter:      1000,
		tol:          1e-4,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.randomState >= 0 {
		svc.rng = rand.New(rand.NewSource(svc.randomState))
	} else {
		svc.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return svc
}

// WithSVCC sets the inverse regularization strength.
func WithSVCC(c float64) LinearSVCOption {
	return func(svc *LinearSVC) {
		svc.c = c
	}
}

// WithSVCFitIntercept sets whether to fit an intercept term.
func WithSVCFitIntercept(fit bool) LinearSVCOption {
	return func(svc *LinearSVC) {
		svc.fitIntercept = fit
	}
}

// WithSVCMaxIter sets the maximum number of iterations.
func WithSVCMaxIter(maxIter int) LinearSVCOption {
	return func(svc *LinearSVC) {
		svc.maxIter = maxIter
	}
}

// WithSVCTol sets the tolerance for the stopping criterion.
func WithSVCTol(tol float64) LinearSVCOption {
	return func(svc *LinearSVC) {
		svc.tol = tol
	}
}

// WithSVCRandomState sets the random seed for weight initialization.
func WithSVCRandomState(seed int64) LinearSVCOption {
	return func(svc *LinearSVC) {
		svc.randomState = seed
		if seed >= 0 {
			svc.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// Fit trains the linear SVM.
func (svc *LinearSVC) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples != yRows {
		return errors.NewDimensionError("LinearSVC.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("LinearSVC.Fit", "y must be a column vector")
	}

	svc.classes = extractClasses(y)
	svc.nFeatures = nFeatures

	nSets := 1
	if len(svc.classes) > 2 {
		nSets = len(svc.classes)
	}
	svc.coef = make([][]float64, nSets)
	svc.intercept = make([]float64, nSets)
	for i := range svc.coef {
		svc.coef[i] = make([]float64, nFeatures)
		for j := range svc.coef[i] {
			svc.coef[i][j] = svc.rng.NormFloat64() * 0.01
		}
	}

	if len(svc.classes) == 2 {
		svc.descend(X, signedTargets(y, svc.classes[1]), 0)
	} else {
		for classIdx, class := range svc.classes {
			svc.descend(X, signedTargets(y, class), classIdx)
		}
	}

	svc.state.SetFitted()
	svc.state.SetDimensions(nFeatures, nSamples)
	return nil
}

// descend runs subgradient descent on the hinge loss for one weight set.
// Targets must be in {-1, +1}.
func (svc *LinearSVC) descend(X mat.Matrix, target []float64, setIdx int) {
	nSamples, nFeatures := X.Dims()
	weights := svc.coef[setIdx]
	intercept := &svc.intercept[setIdx]
	lambda := 1.0 / (svc.c * float64(nSamples))

	const baseLearningRate = 1.0
	converged := false

	for iter := 0; iter < svc.maxIter; iter++ {
		gradWeights := make([]float64, nFeatures)
		gradIntercept := 0.0

		for i := 0; i < nSamples; i++ {
			z := *intercept
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * weights[j]
			}
			// Hinge subgradient: only margin violations contribute
			if target[i]*z < 1 {
				gradIntercept -= target[i]
				for j := 0; j < nFeatures; j++ {
					gradWeights[j] -= target[i] * X.At(i, j)
				}
			}
		}

		for j := range gradWeights {
			gradWeights[j] = gradWeights[j]/float64(nSamples) + lambda*weights[j]
		}
		gradIntercept /= float64(nSamples)

		learningRate := baseLearningRate / (1.0 + 0.1*float64(iter))

		for j := range weights {
			weights[j] -= learningRate * gradWeights[j]
		}
		if svc.fitIntercept {
			*intercept -= learningRate * gradIntercept
		}

		maxGrad := math.Abs(gradIntercept)
		for _, g := range gradWeights {
			if math.Abs(g) > maxGrad {
				maxGrad = math.Abs(g)
			}
		}
		if maxGrad < svc.tol {
			converged = true
			break
		}
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("LinearSVC", svc.maxIter, ""))
	}
}

// Predict returns the predicted class labels for X.
func (svc *LinearSVC) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !svc.state.IsFitted() {
		return nil, errors.NewNotFittedError("LinearSVC", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != svc.nFeatures {
		return nil, errors.NewDimensionError("LinearSVC.Predict", svc.nFeatures, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)

	if len(svc.classes) == 2 {
		for i := 0; i < nSamples; i++ {
			z := svc.intercept[0]
			for j := 0; j < nFeatures; j++ {
				z += X.At(i, j) * svc.coef[0][j]
			}
			if z >= 0 {
				predictions.Set(i, 0, float64(svc.classes[1]))
			} else {
				predictions.Set(i, 0, float64(svc.classes[0]))
			}
		}
		return predictions, nil
	}

	for i := 0; i < nSamples; i++ {
		bestScore := math.Inf(-1)
		bestClass := 0
		for classIdx := range svc.classes {
			score := svc.intercept[classIdx]
			for j := 0; j < nFeatures; j++ {
				score += X.At(i, j) * svc.coef[classIdx][j]
			}
			if score > bestScore {
				bestScore = score
				bestClass = classIdx
			}
		}
		predictions.Set(i, 0, float64(svc.classes[bestClass]))
	}
	return predictions, nil
}

// Score returns the mean accuracy on the given test data and labels.
func (svc *LinearSVC) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := svc.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, predictions)
}

// Coef returns a copy of the learned coefficients, one row per class.
func (svc *LinearSVC) Coef() [][]float64 {
	return copyCoef(svc.coef)
}

// Intercept returns a copy of the learned intercept terms.
func (svc *LinearSVC) Intercept() []float64 {
	return copyVec(svc.intercept)
}

// Classes returns the unique classes seen during fitting, sorted ascending.
func (svc *LinearSVC) Classes() []int {
	out := make([]int, len(svc.classes))
	copy(out, svc.classes)
	return out
}

// signedTargets converts labels to -1/+1 against the given positive class.
func signedTargets(y mat.Matrix, positive int) []float64 {
	rows, _ := y.Dims()
	target := make([]float64, rows)
	for i := 0; i < rows; i++ {
		if int(y.At(i, 0)) == positive {
			target[i] = 1
		} else {
			target[i] = -1
		}
	}
	return target
}
