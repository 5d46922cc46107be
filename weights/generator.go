// Package weights implements random weight generators for
// random-features classifiers.
//
// Every generator is a pure function of its parameters and the
// supplied random number generator: the same parameters and an
// identically seeded *rand.Rand produce bit-identical matrices. The
// RNG is always passed explicitly; no generator touches global
// entropy state, so concurrent trials stay reproducible.
//
// Generated matrices have shape (width, n_features): one random
// direction per row.
package weights

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// Generator produces a matrix of random projection directions.
type Generator interface {
	// Name returns a short identifier used in logs.
	Name() string

	// Generate returns a (width, nFeatures) matrix of random directions.
	// All randomness is drawn from rng.
	Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error)
}

// validateShape rejects non-positive dimensions before any drawing happens.
func validateShape(width, nFeatures int) error {
	if width <= 0 {
		return errors.NewValidationError("width", "must be a positive integer", width)
	}
	if nFeatures <= 0 {
		return errors.NewValidationError("n_features", "must be a positive integer", nFeatures)
	}
	return nil
}
