package weights

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/pkg/errors"
)

const (
	// kernelAmplitude scales the receptive-field covariance.
	kernelAmplitude = 10.0
	// kernelJitter is added to the diagonal to keep the kernel
	// positive definite under floating-point error.
	kernelJitter = 1e-5
)

// ReceptiveField generates random weights inspired by the tuning
// properties of neurons in primary visual cortex. Each row is a sample
// from a zero-mean Gaussian process over a sqrt(n_features) x
// sqrt(n_features) grid, with a non-stationary covariance
//
//	K(x, y) = 10 * exp(-|x-y|²/(2L²)) * exp(-|x-m|²/(2T²)) * exp(-|y-m|²/(2T²))
//
// where m is a random center drawn per row. T tunes the spatial
// frequency of the weights and L their width; both must keep the
// kernel well conditioned or Cholesky factorization will fail.
type ReceptiveField struct {
	// T determines the spatial frequency of the random weights.
	T float64
	// L determines the width of the random weights.
	L float64
}

// NewReceptiveField creates a receptive-field weight generator with
// frequency parameter t and width parameter l.
func NewReceptiveField(t, l float64) ReceptiveField {
	return ReceptiveField{T: t, L: l}
}

// Name implements Generator.
func (ReceptiveField) Name() string { return "receptive_field" }

// Generate implements Generator. n_features must be a perfect square.
func (g ReceptiveField) Generate(width, nFeatures int, rng *rand.Rand) (*mat.Dense, error) {
	if err := validateShape(width, nFeatures); err != nil {
		return nil, err
	}
	if g.T <= 0 {
		return nil, errors.NewValidationError("t", "must be positive", g.T)
	}
	if g.L <= 0 {
		return nil, errors.NewValidationError("l", "must be positive", g.L)
	}
	side := int(math.Sqrt(float64(nFeatures)))
	if side*side != nFeatures {
		return nil, errors.NewValidationError("n_features",
			"must be a perfect square for receptive-field weights", nFeatures)
	}

	grid := gridPoints(side)
	sqDist := pairwiseSqDist(grid)

	W := mat.NewDense(width, nFeatures, nil)
	z := mat.NewVecDense(nFeatures, nil)
	var lower mat.TriDense
	var w mat.VecDense

	for i := 0; i < width; i++ {
		center := [2]float64{float64(rng.Intn(side)), float64(rng.Intn(side))}
		K := g.kernelMatrix(grid, sqDist, center)

		var chol mat.Cholesky
		if ok := chol.Factorize(K); !ok {
			return nil, errors.NewModelError("ReceptiveField.Generate",
				"cholesky factorization failed for kernel matrix; adjust t and l",
				errors.ErrNotPositiveDefinite)
		}
		chol.LTo(&lower)

		for j := 0; j < nFeatures; j++ {
			z.SetVec(j, rng.NormFloat64())
		}
		w.MulVec(&lower, z)

		// An ill-conditioned factor can leak NaN/Inf into the row.
		if err := errors.CheckNumericalStability("receptive_field_row", w.RawVector().Data, i); err != nil {
			return nil, err
		}

		for j := 0; j < nFeatures; j++ {
			W.Set(i, j, w.AtVec(j))
		}
	}
	return W, nil
}

// kernelMatrix builds the (n_features x n_features) covariance for one
// center: a translation-invariant smoothness term from the pairwise
// grid distances and two center-dependent Gaussian envelopes, plus
// diagonal jitter.
func (g ReceptiveField) kernelMatrix(grid [][2]float64, sqDist *mat.SymDense, center [2]float64) *mat.SymDense {
	n := len(grid)
	twoL2 := 2 * g.L * g.L
	twoT2 := 2 * g.T * g.T

	envelope := make([]float64, n)
	for i, p := range grid {
		dx := p[0] - center[0]
		dy := p[1] - center[1]
		envelope[i] = math.Exp(-(dx*dx + dy*dy) / twoT2)
	}

	K := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := kernelAmplitude * math.Exp(-sqDist.At(i, j)/twoL2) * envelope[i] * envelope[j]
			if i == j {
				v += kernelJitter
			}
			K.SetSym(i, j, v)
		}
	}
	return K
}

// gridPoints enumerates the side x side integer grid in row-major order.
func gridPoints(side int) [][2]float64 {
	grid := make([][2]float64, side*side)
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			grid[i*side+j] = [2]float64{float64(i), float64(j)}
		}
	}
	return grid
}

// pairwiseSqDist computes squared euclidean distances between all grid points.
func pairwiseSqDist(grid [][2]float64) *mat.SymDense {
	n := len(grid)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dx := grid[i][0] - grid[j][0]
			dy := grid[i][1] - grid[j][1]
			d.SetSym(i, j, dx*dx+dy*dy)
		}
	}
	return d
}
