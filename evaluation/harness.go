// Package evaluation provides a repeated-trial harness for measuring
// how a random-features classifier performs across independent draws
// of its random weights. Each trial builds a fresh classifier, fits it
// on the training split, and scores it on both splits; the harness
// aggregates the scores into means and standard deviations.
package evaluation

import (
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/randfeat/classifier"
	"github.com/YuminosukeSato/randfeat/core/parallel"
	"github.com/YuminosukeSato/randfeat/pkg/errors"
	"github.com/YuminosukeSato/randfeat/pkg/log"
)

// Factory constructs a fresh classifier for one trial. Each call must
// return an independent instance; trials run concurrently and share
// nothing. For score variance to be meaningful the returned classifier
// should be unseeded (or seeded differently per call), otherwise every
// trial draws identical weights.
type Factory func() *classifier.RFClassifier

// Dataset bundles the train/test split a harness run operates on.
type Dataset struct {
	XTrain mat.Matrix
	YTrain mat.Matrix
	XTest  mat.Matrix
	YTest  mat.Matrix
}

// TrialResult holds the outcome of a single fit-and-score trial.
type TrialResult struct {
	TrainScore float64
	TestScore  float64

	// Classifier is the fitted model of this trial, kept so callers
	// can inspect its weights or reuse the best-scoring one.
	Classifier *classifier.RFClassifier
}

// Stats aggregates scores across trials. Standard deviations are
// population standard deviations over the trial scores.
type Stats struct {
	MeanTrainScore float64
	StdTrainScore  float64
	MeanTestScore  float64
	StdTestScore   float64
}

// RunTrial executes one trial: build, fit on the training split, and
// score on both splits.
func RunTrial(factory Factory, data Dataset) (TrialResult, error) {
	if factory == nil {
		return TrialResult{}, errors.NewValidationError("factory", "must not be nil", nil)
	}

	clf := factory()
	if clf == nil {
		return TrialResult{}, errors.NewValidationError("factory", "returned a nil classifier", nil)
	}

	if err := clf.Fit(data.XTrain, data.YTrain); err != nil {
		return TrialResult{}, errors.Wrap(err, "fitting trial classifier")
	}

	trainScore, err := clf.Score(data.XTrain, data.YTrain)
	if err != nil {
		return TrialResult{}, errors.Wrap(err, "scoring training split")
	}

	testScore, err := clf.Score(data.XTest, data.YTest)
	if err != nil {
		return TrialResult{}, errors.Wrap(err, "scoring test split")
	}

	return TrialResult{
		TrainScore: trainScore,
		TestScore:  testScore,
		Classifier: clf,
	}, nil
}

// RepeatTrials runs nTrials independent trials concurrently and
// aggregates the scores. Trials are independent by construction, so
// they fan out across the available CPU cores. If any trial fails the
// harness returns the first error and no statistics.
func RepeatTrials(factory Factory, data Dataset, nTrials int) (Stats, []TrialResult, error) {
	if nTrials <= 0 {
		return Stats{}, nil, errors.NewValidationError("n_trials", "must be a positive integer", nTrials)
	}
	if factory == nil {
		return Stats{}, nil, errors.NewValidationError("factory", "must not be nil", nil)
	}

	start := time.Now()

	results := make([]TrialResult, nTrials)
	trialErrs := make([]error, nTrials)

	parallel.ForEach(nTrials, func(i int) {
		results[i], trialErrs[i] = RunTrial(factory, data)
	})

	for i, err := range trialErrs {
		if err != nil {
			return Stats{}, nil, errors.Wrapf(err, "trial %d failed", i)
		}
	}

	trainScores := make([]float64, nTrials)
	testScores := make([]float64, nTrials)
	for i, res := range results {
		trainScores[i] = res.TrainScore
		testScores[i] = res.TestScore
	}

	stats := Stats{
		MeanTrainScore: stat.Mean(trainScores, nil),
		StdTrainScore:  stat.PopStdDev(trainScores, nil),
		MeanTestScore:  stat.Mean(testScores, nil),
		StdTestScore:   stat.PopStdDev(testScores, nil),
	}

	log.GetLoggerWithName("evaluation").Info("completed repeated trials",
		log.OperationKey, "repeat_trials",
		log.TrialsKey, nTrials,
		log.TrainScoreKey, stats.MeanTrainScore,
		log.TestScoreKey, stats.MeanTestScore,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return stats, results, nil
}
