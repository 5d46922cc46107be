package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/randfeat/classifier"
	"github.com/YuminosukeSato/randfeat/linear_model"
	pkgerrors "github.com/YuminosukeSato/randfeat/pkg/errors"
	"github.com/YuminosukeSato/randfeat/pkg/log"
	"github.com/YuminosukeSato/randfeat/weights"
)

// splitDataset builds a separable two-cluster train/test split with 4
// features.
func splitDataset() Dataset {
	build := func(offsets []float64) (*mat.Dense, *mat.Dense) {
		n := 2 * len(offsets)
		data := make([]float64, 0, n*4)
		labels := make([]float64, 0, n)
		for _, d := range offsets {
			data = append(data, 1+d, 1-d, 1+d/2, 1-d/2)
			labels = append(labels, 0)
		}
		for _, d := range offsets {
			data = append(data, 5+d, 5-d, 5+d/2, 5-d/2)
			labels = append(labels, 1)
		}
		return mat.NewDense(n, 4, data), mat.NewDense(n, 1, labels)
	}

	XTrain, yTrain := build([]float64{-0.4, -0.3, -0.2, -0.1, 0, 0.1, 0.2, 0.3, 0.4, 0.5})
	XTest, yTest := build([]float64{-0.35, -0.15, 0.05, 0.25, 0.45})

	return Dataset{XTrain: XTrain, YTrain: yTrain, XTest: XTest, YTest: yTest}
}

func whiteNoiseFactory() Factory {
	return func() *classifier.RFClassifier {
		return classifier.NewRFClassifier(10, weights.NewWhiteNoise(),
			linear_model.NewLogisticRegression(
				linear_model.WithLRMaxIter(500),
			),
		)
	}
}

func TestRunTrial(t *testing.T) {
	data := splitDataset()

	result, err := RunTrial(whiteNoiseFactory(), data)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.TrainScore, 0.0)
	assert.LessOrEqual(t, result.TrainScore, 1.0)
	assert.GreaterOrEqual(t, result.TestScore, 0.0)
	assert.LessOrEqual(t, result.TestScore, 1.0)

	require.NotNil(t, result.Classifier)
	assert.True(t, result.Classifier.IsFitted())
}

func TestRunTrial_NilFactory(t *testing.T) {
	_, err := RunTrial(nil, splitDataset())

	var valErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "factory", valErr.ParamName)
}

func TestRepeatTrials(t *testing.T) {
	data := splitDataset()

	stats, results, err := RepeatTrials(whiteNoiseFactory(), data, 5)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.GreaterOrEqual(t, stats.MeanTrainScore, 0.0)
	assert.LessOrEqual(t, stats.MeanTrainScore, 1.0)
	assert.GreaterOrEqual(t, stats.MeanTestScore, 0.0)
	assert.LessOrEqual(t, stats.MeanTestScore, 1.0)
	assert.GreaterOrEqual(t, stats.StdTrainScore, 0.0)
	assert.GreaterOrEqual(t, stats.StdTestScore, 0.0)

	// Every trial must carry its own fitted classifier.
	for _, res := range results {
		require.NotNil(t, res.Classifier)
		assert.True(t, res.Classifier.IsFitted())
	}

	// Trials draw independent weights, so the models differ.
	assert.False(t, mat.Equal(results[0].Classifier.W(), results[1].Classifier.W()))
}

func TestRepeatTrials_SeededFactoryHasZeroVariance(t *testing.T) {
	data := splitDataset()
	factory := func() *classifier.RFClassifier {
		return classifier.NewRFClassifier(10, weights.NewWhiteNoise(),
			linear_model.NewLogisticRegression(
				linear_model.WithLRMaxIter(500),
				linear_model.WithLRRandomState(7),
			),
			classifier.WithRandomState(7),
		)
	}

	stats, _, err := RepeatTrials(factory, data, 4)
	require.NoError(t, err)

	assert.Equal(t, 0.0, stats.StdTrainScore)
	assert.Equal(t, 0.0, stats.StdTestScore)
}

func TestRepeatTrials_InvalidTrialCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, _, err := RepeatTrials(whiteNoiseFactory(), splitDataset(), n)

		var valErr *pkgerrors.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "n_trials", valErr.ParamName)
	}
}

func TestRepeatTrials_EmitsSummaryLog(t *testing.T) {
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	t.Cleanup(func() {
		p, _ := log.NewTestLoggerProvider(log.LevelError)
		log.SetProvider(p)
	})

	stats, _, err := RepeatTrials(whiteNoiseFactory(), splitDataset(), 3)
	require.NoError(t, err)

	captured := provider.GetLogger().(*log.TestLogger)
	assert.True(t, captured.ContainsMessage("completed repeated trials"))
	assert.True(t, captured.ContainsField(log.ComponentKey, "evaluation"))
	// JSON numbers decode as float64
	assert.True(t, captured.ContainsField(log.TrialsKey, 3.0))
	assert.True(t, captured.ContainsField(log.TrainScoreKey, stats.MeanTrainScore))
	assert.True(t, captured.ContainsField(log.TestScoreKey, stats.MeanTestScore))
}

func TestRepeatTrials_TrialErrorAborts(t *testing.T) {
	data := splitDataset()

	// Identity weights require width == n_features; width 10 vs 4
	// features makes every trial fail.
	factory := func() *classifier.RFClassifier {
		return classifier.NewRFClassifier(10, weights.NewIdentity(),
			linear_model.NewLogisticRegression(),
		)
	}

	stats, results, err := RepeatTrials(factory, data, 3)

	var valErr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Nil(t, results)
	assert.Equal(t, Stats{}, stats)
}
