package weights

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

// WhiteNoise generates i.i.d. standard normal weights: W[i,j] ~ N(0, 1).
type WhiteNoise struct{}

// NewWhiteNoise creates a white-noise weight generator.
func NewWhiteNoise() WhiteNoise {
	return WhiteNoise{}
}

// Name implements Generator.
func (WhiteNoise) Name() string { return "white_noise" }

// Generate implements Generator.
func (WhiteNoise) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}

	W := mat.NewDense(width, nFeatures, nil)
	data := W.RawMatrix().Data
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return W, nil
}

// Unimodal generates rows that are scaled Gaussian bumps over the
// feature index range. For each row, a center is drawn uniformly from
// [0, n_features), a spread from [0.1, n_features/4), and an integer
// amplitude from [1, 20).
type Unimodal struct{}

// NewUnimodal creates a unimodal bump weight generator.
func NewUnimodal() Unimodal {
	return Unimodal{}
}

// Name implements Generator.
func (Unimodal) Name() string { return "unimodal" }

// Generate implements Generator.
func (Unimodal) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}

	n := float64(nFeatures)
	W := mat.NewDense(width, nFeatures, nil)
	for i := 0; i < width; i++ {
		mu := rng.Float64() * n
		sigma := 0.1 + rng.Float64()*(n/4-0.1)
		amplitude := float64(1 + rng.Intn(19))

		row := W.RawRowView(i)
		for k := range row {
			d := mu - float64(k)
			row[k] = amplitude * math.Exp(-d*d/(2*sigma*sigma))
		}
	}
	return W, nil
}

// Identity returns the n_features x n_features identity matrix, the
// degenerate "no random projection" baseline. The requested width must
// equal n_features.
type Identity struct{}

// NewIdentity creates an identity weight generator.
func NewIdentity() Identity {
	return Identity{}
}

// Name implements Generator.
func (Identity) Name() string { return "identity" }

// Generate implements Generator.
func (Identity) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}
	if width != nFeatures {
		return nil, errors.NewValidationError("width",
			"identity weights require width == n_features", width)
	}

	W := mat.NewDense(nFeatures, nFeatures, nil)
	for i := 0; i < nFeatures; i++ {
		W.Set(i, i, 1)
	}
	return W, nil
}
