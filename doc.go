// Package randfeat provides random-features classification for Go,
// with a scikit-learn-like estimator API built on gonum.
//
// A random-features classifier projects inputs through a fixed,
// randomly generated weight matrix, applies a pointwise nonlinearity,
// and trains a linear classifier on the resulting high-dimensional
// representation. The projection is never learned: it is pinned once
// per model instance and reused identically at inference time.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/randfeat/activation"
//	    "github.com/YuminosukeSato/randfeat/classifier"
//	    "github.com/YuminosukeSato/randfeat/linear_model"
//	    "github.com/YuminosukeSato/randfeat/weights"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 5, 5, 5, 6})
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    clf := classifier.NewRFClassifier(20, weights.NewWhiteNoise(),
//	        linear_model.NewLogisticRegression(),
//	        classifier.WithActivation(activation.NewReLU()),
//	        classifier.WithRandomState(42),
//	    )
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    acc, err := clf.Score(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("accuracy:", acc)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - weights: random weight generators (white noise, unimodal,
//     identity, spectral, band-limited spectral, receptive-field)
//   - activation: pointwise nonlinearities (ReLU, Poly, Sigmoid)
//   - classifier: the RFClassifier estimator adapter
//   - linear_model: injected linear classifiers (LogisticRegression,
//     LinearSVC)
//   - evaluation: repeated-trial evaluation harness
//   - metrics: classification metrics
//   - preprocessing: data preprocessing utilities
//   - core/model: core interfaces and state management
//   - core/parallel: parallel processing utilities
//
// # Weight generators
//
// Every generator is deterministic given the same seed and returns a
// matrix of shape (width, n_features). The spectral family produces
// correlated rows through the discrete Fourier basis; the
// receptive-field generator samples localized rows from a
// non-stationary Gaussian process, mimicking spatially tuned sensory
// neurons.
package randfeat
