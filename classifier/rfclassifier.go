// Package classifier implements the random-features classifier: a
// fixed random projection, a pointwise nonlinearity, and an injected
// linear classifier trained on the projected representation.
//
// The random weights are generated exactly once per Fit call and
// reused identically at inference time. The projection is not learned;
// pinning it per model instance keeps the train and test
// representations distributionally identical.
package classifier

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/activation"
	"github.com/YuminosukeSato/randfeat/core/model"
	"github.com/YuminosukeSato/randfeat/pkg/errors"
	"github.com/YuminosukeSato/randfeat/pkg/log"
	"github.com/YuminosukeSato/randfeat/weights"
)

// RFClassifier projects inputs onto randomly generated weights and
// classifies them with an injected linear classifier.
type RFClassifier struct {
	state *model.StateManager

	// Hyperparameters
	width       int
	generator   weights.Generator
	act         activation.Activation
	bias        []float64 // length 1 (broadcast) or width
	clf         model.LinearClassifier
	randomState int64

	// Fitted attributes
	w         *mat.Dense    // (width, n_features) random weights
	b         *mat.VecDense // (width,) bias
	h         *mat.Dense    // representation of the last fitted input
	coef      [][]float64   // learned coefficients of the inner classifier
	intercept []float64     // learned intercepts of the inner classifier

	fm *featureMap
}

// Option is a functional option for RFClassifier.
type Option func(*RFClassifier)

// NewRFClassifier creates a random-features classifier with the given
// number of random directions, weight generator, and injected linear
// classifier. By default the bias is 0, the nonlinearity is ReLU, and
// weight generation is unseeded.
func NewRFClassifier(width int, generator weights.Generator, clf model.LinearClassifier, opts ...Option) *RFClassifier {
	c := &RFClassifier{
		state:       model.NewStateManager(),
		width:       width,
		generator:   generator,
		act:         activation.NewReLU(),
		bias:        []float64{0},
		clf:         clf,
		randomState: -1,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithActivation sets the pointwise nonlinearity applied after projection.
func WithActivation(act activation.Activation) Option {
	return func(c *RFClassifier) {
		c.act = act
	}
}

// WithBias sets a scalar bias broadcast over all random directions.
func WithBias(bias float64) Option {
	return func(c *RFClassifier) {
		c.bias = []float64{bias}
	}
}

// WithBiasVector sets a per-direction bias. Its length must equal the
// width; this is validated at fit time.
func WithBiasVector(bias []float64) Option {
	return func(c *RFClassifier) {
		c.bias = make([]float64, len(bias))
		copy(c.bias, bias)
	}
}

// WithRandomState sets the seed used for weight generation. Fitting
// with the same seed and data produces bit-identical weights.
func WithRandomState(seed int64) Option {
	return func(c *RFClassifier) {
		c.randomState = seed
	}
}

// Fit generates the random weights, transforms X through the feature
// map, and fits the injected linear classifier on the representation.
// Calling Fit again regenerates the weights from scratch.
func (c *RFClassifier) Fit(X, y mat.Matrix) error {
	const op = "RFClassifier.Fit"

	// Every Fit starts from scratch: a previous fit is invalidated
	// even if this attempt fails partway through.
	c.state.Reset()
	c.w, c.b, c.h, c.fm = nil, nil, nil, nil
	c.coef, c.intercept = nil, nil

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError(op, nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError(op, "y must be a column vector")
	}
	if c.width <= 0 {
		return errors.NewValidationError("width", "must be a positive integer", c.width)
	}
	if c.generator == nil {
		return errors.NewValidationError("generator", "must not be nil", nil)
	}
	if c.clf == nil {
		return errors.NewValidationError("clf", "must not be nil", nil)
	}
	if len(c.bias) != 1 && len(c.bias) != c.width {
		return errors.NewValidationError("bias",
			"must be a scalar or have one entry per random direction", len(c.bias))
	}

	var rng *rand.Rand
	if c.randomState >= 0 {
		rng = rand.New(rand.NewSource(c.randomState))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	W, err := c.generator.Generate(c.width, nFeatures, rng)
	if err != nil {
		return errors.Wrap(err, "generating random weights")
	}
	wr, wc := W.Dims()
	if wr != c.width || wc != nFeatures {
		return errors.NewModelError(op, "weight generator returned wrong shape",
			errors.Newf("expected (%d, %d), got (%d, %d)", c.width, nFeatures, wr, wc))
	}

	b := mat.NewVecDense(c.width, nil)
	for j := 0; j < c.width; j++ {
		if len(c.bias) == 1 {
			b.SetVec(j, c.bias[0])
		} else {
			b.SetVec(j, c.bias[j])
		}
	}

	fm := &featureMap{weights: W, bias: b, act: c.act}
	H := fm.transform(X)

	if err := errors.CheckMatrix(op, H, nSamples, c.width, 0); err != nil {
		return err
	}

	if err := c.clf.Fit(H, y); err != nil {
		return errors.Wrap(err, "fitting injected linear classifier")
	}

	c.w = W
	c.b = b
	c.h = H
	c.fm = fm
	c.coef = c.clf.Coef()
	c.intercept = c.clf.Intercept()
	c.state.SetFitted()
	c.state.SetDimensions(nFeatures, nSamples)

	log.GetLoggerWithName("classifier").Debug("fitted random-features classifier",
		log.ModelNameKey, "RFClassifier",
		log.OperationKey, "fit",
		log.GeneratorKey, c.generator.Name(),
		log.WidthKey, c.width,
		log.FeaturesKey, nFeatures,
		log.SamplesKey, nSamples,
		log.RandomStateKey, c.randomState,
	)

	return nil
}

// Transform projects X through the stored random weights and
// nonlinearity. The model must be fitted.
func (c *RFClassifier) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !c.state.IsFitted() {
		return nil, errors.NewNotFittedError("RFClassifier", "Transform")
	}

	_, nFeatures := X.Dims()
	fitFeatures, _ := c.state.GetDimensions()
	if nFeatures != fitFeatures {
		return nil, errors.NewDimensionError("RFClassifier.Transform", fitFeatures, nFeatures, 1)
	}

	return c.fm.transform(X), nil
}

// Predict returns the inner classifier's predictions for the
// random-feature representation of X.
func (c *RFClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !c.state.IsFitted() {
		return nil, errors.NewNotFittedError("RFClassifier", "Predict")
	}

	H, err := c.Transform(X)
	if err != nil {
		return nil, err
	}
	return c.clf.Predict(H)
}

// Score returns the mean accuracy of the inner classifier on the
// random-feature representation of X against y.
func (c *RFClassifier) Score(X, y mat.Matrix) (float64, error) {
	if !c.state.IsFitted() {
		return 0, errors.NewNotFittedError("RFClassifier", "Score")
	}

	H, err := c.Transform(X)
	if err != nil {
		return 0, err
	}
	return c.clf.Score(H, y)
}

// IsFitted returns whether Fit has completed successfully.
func (c *RFClassifier) IsFitted() bool {
	return c.state.IsFitted()
}

// W returns the random weight matrix generated at fit time. The
// returned matrix is owned by the model and must not be modified.
func (c *RFClassifier) W() *mat.Dense {
	return c.w
}

// Bias returns the bias vector used by the feature map.
func (c *RFClassifier) Bias() *mat.VecDense {
	return c.b
}

// H returns the random-feature representation of the last fitted
// input, kept for inspection.
func (c *RFClassifier) H() *mat.Dense {
	return c.h
}

// Coef returns the learned coefficients of the inner classifier.
func (c *RFClassifier) Coef() [][]float64 {
	return c.coef
}

// Intercept returns the learned intercepts of the inner classifier.
func (c *RFClassifier) Intercept() []float64 {
	return c.intercept
}
