package linear_model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	pkgerrors "github.com/YuminosukeSato/randfeat/pkg/errors"
)

func TestLinearSVC_BinaryFit(t *testing.T) {
	X, y := binaryBlobs()
	svc := NewLinearSVC(
		WithSVCMaxIter(1000),
		WithSVCRandomState(42),
	)

	require.NoError(t, svc.Fit(X, y))

	score, err := svc.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	assert.Equal(t, []int{0, 1}, svc.Classes())
	require.Len(t, svc.Coef(), 1)
	assert.Len(t, svc.Coef()[0], 2)
}

func TestLinearSVC_Multiclass(t *testing.T) {
	X, y := multiclassBlobs()
	svc := NewLinearSVC(
		WithSVCMaxIter(1000),
		WithSVCRandomState(42),
	)

	require.NoError(t, svc.Fit(X, y))

	score, err := svc.Score(X, y)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 0.9)

	assert.Len(t, svc.Coef(), 3)
	assert.Len(t, svc.Intercept(), 3)
}

func TestLinearSVC_NotFitted(t *testing.T) {
	svc := NewLinearSVC()
	X, _ := binaryBlobs()

	_, err := svc.Predict(X)
	var nfErr *pkgerrors.NotFittedError
	require.ErrorAs(t, err, &nfErr)
}

func TestLinearSVC_DimensionChecks(t *testing.T) {
	X, y := binaryBlobs()
	svc := NewLinearSVC(WithSVCMaxIter(100), WithSVCRandomState(0))

	yShort := mat.NewDense(4, 1, []float64{0, 1, 0, 1})
	err := svc.Fit(X, yShort)
	var dimErr *pkgerrors.DimensionError
	require.ErrorAs(t, err, &dimErr)

	require.NoError(t, svc.Fit(X, y))

	XWide := mat.NewDense(2, 7, nil)
	_, err = svc.Predict(XWide)
	require.ErrorAs(t, err, &dimErr)
}

func TestSignedTargets(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	assert.Equal(t, []float64{-1, 1, 1, -1}, signedTargets(y, 1))
	assert.Equal(t, []float64{1, -1, -1, 1}, signedTargets(y, 0))
}

func TestExtractClasses(t *testing.T) {
	y := mat.NewDense(6, 1, []float64{2, 0, 1, 2, 0, 1})
	assert.Equal(t, []int{0, 1, 2}, extractClasses(y))
}
