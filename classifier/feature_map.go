package classifier

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/activation"
	"github.com/YuminosukeSato/randfeat/core/parallel"
)

// featureMap applies the fixed random projection: H = g(X·Wᵀ + b).
// Fit and Transform share the same instance, so the train and
// inference representations can never diverge.
type featureMap struct {
	weights *mat.Dense    // (width, n_features)
	bias    *mat.VecDense // (width,)
	act     activation.Activation
}

// Row count below which bias and activation are applied sequentially.
const parallelThreshold = 256

// transform computes the random-feature representation of X.
func (fm *featureMap) transform(X mat.Matrix) *mat.Dense {
	nSamples, _ := X.Dims()
	width, _ := fm.weights.Dims()

	H := mat.NewDense(nSamples, width, nil)
	H.Mul(X, fm.weights.T())

	parallel.ParallelizeWithThreshold(nSamples, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := H.RawRowView(i)
			for j := range row {
				row[j] = fm.act.Evaluate(row[j] + fm.bias.AtVec(j))
			}
		}
	})

	return H
}
