package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	pkgerrors "github.com/YuminosukeSato/randfeat/pkg/errors"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	r, c := scaled.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)

	// 変換後は各列が平均0、標準偏差1になる
	for j := 0; j < c; j++ {
		sum := 0.0
		sumSq := 0.0
		for i := 0; i < r; i++ {
			v := scaled.At(i, j)
			sum += v
			sumSq += v * v
		}
		mean := sum / float64(r)
		variance := sumSq/float64(r) - mean*mean
		assert.InDelta(t, 0.0, mean, 1e-9)
		assert.InDelta(t, 1.0, variance, 1e-9)
	}
}

func TestStandardScaler_InverseTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, -5,
		2, 0,
		3, 5,
	})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	restored, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, X.At(i, j), restored.At(i, j), 1e-9)
		}
	}
}

func TestStandardScaler_ConstantFeature(t *testing.T) {
	// 定数列はスケール1として扱われ、ゼロ除算しない
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 0))
	}
}

func TestStandardScaler_NotFitted(t *testing.T) {
	scaler := NewStandardScalerDefault()
	X := mat.NewDense(2, 2, nil)

	_, err := scaler.Transform(X)
	var nfErr *pkgerrors.NotFittedError
	require.ErrorAs(t, err, &nfErr)
}

func TestStandardScaler_DimensionMismatch(t *testing.T) {
	scaler := NewStandardScalerDefault()
	require.NoError(t, scaler.Fit(mat.NewDense(3, 2, nil)))

	_, err := scaler.Transform(mat.NewDense(3, 5, nil))
	var dimErr *pkgerrors.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 2, dimErr.Expected)
	assert.Equal(t, 5, dimErr.Got)
}

func TestMinMaxScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 4})

	scaler := NewMinMaxScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, 0.0, scaled.At(0, 0))
	assert.Equal(t, 1.0, scaled.At(3, 0))
	assert.InDelta(t, 0.25, scaled.At(1, 0), 1e-9)
	assert.InDelta(t, 0.5, scaled.At(2, 0), 1e-9)
}

func TestMinMaxScaler_CustomRange(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{0, 5, 10})

	scaler := NewMinMaxScaler([2]float64{-1, 1})
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, scaled.At(0, 0), 1e-9)
	assert.InDelta(t, 0.0, scaled.At(1, 0), 1e-9)
	assert.InDelta(t, 1.0, scaled.At(2, 0), 1e-9)
}

func TestMinMaxScaler_InvalidRange(t *testing.T) {
	scaler := NewMinMaxScaler([2]float64{1, 0})
	err := scaler.Fit(mat.NewDense(2, 1, []float64{0, 1}))

	var valErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "feature_range", valErr.ParamName)
}

func TestMinMaxScaler_InverseTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
	})

	scaler := NewMinMaxScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	restored, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, X.At(i, j), restored.At(i, j), 1e-9)
		}
	}
}
