// Package activation provides pointwise nonlinearities applied to the
// randomly projected representation.
//
// Activations are pure and stateless; they are applied elementwise to
// matrices of any shape by the feature map.
package activation

import (
	"math"

	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// Activation is a pure pointwise nonlinearity.
type Activation interface {
	// Evaluate applies the nonlinearity to a single value.
	Evaluate(x float64) float64

	// Name returns a short identifier used in logs.
	Name() string
}

// ReLU is the thresholded linear unit: max(x, Threshold).
type ReLU struct {
	Threshold float64
}

// NewReLU creates a ReLU with the default threshold of 0.
func NewReLU() ReLU {
	return ReLU{Threshold: 0}
}

// NewReLUWithThreshold creates a ReLU firing above the given threshold.
func NewReLUWithThreshold(threshold float64) ReLU {
	return ReLU{Threshold: threshold}
}

// Evaluate implements Activation.
func (r ReLU) Evaluate(x float64) float64 {
	return math.Max(x, r.Threshold)
}

// Name implements Activation.
func (ReLU) Name() string { return "relu" }

// Poly raises its input to the configured power.
type Poly struct {
	Power float64
}

// NewPoly creates a polynomial activation with the default power of 2.
func NewPoly() Poly {
	return Poly{Power: 2}
}

// NewPolyWithPower creates a polynomial activation of the given degree.
func NewPolyWithPower(power float64) Poly {
	return Poly{Power: power}
}

// Evaluate implements Activation.
func (p Poly) Evaluate(x float64) float64 {
	return math.Pow(x, p.Power)
}

// Name implements Activation.
func (Poly) Name() string { return "poly" }

// Sigmoid is the logistic function 1 / (1 + exp(-x)).
type Sigmoid struct{}

// NewSigmoid creates a sigmoid activation.
func NewSigmoid() Sigmoid {
	return Sigmoid{}
}

// Evaluate implements Activation.
func (Sigmoid) Evaluate(x float64) float64 {
	return 1 / (1 + errors.StabilizeExp(-x))
}

// Name implements Activation.
func (Sigmoid) Name() string { return "sigmoid" }
