// Package crossval evaluates a classifier with k-fold cross-validation.
package crossval

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"petal/internal/classifier"
	"petal/internal/flower/model"
	"petal/internal/logging"
)

var (
	ErrFoldsInvalid = fmt.Errorf("fold count must be between 1 and the dataset size")
	ErrLenMismatch  = fmt.Errorf("actual and predicted lengths are not equal")
)

// ClassifyFn produces a prediction for a single query against a
// training set; the classifier package provides it.
type ClassifyFn func(train []classifier.DataPoint, query classifier.Vector, k int) (*classifier.Prediction, error)

// Split partitions the dataset into nFolds groups, record i going to
// fold i mod nFolds. Folds are disjoint, cover the dataset exactly and
// differ in size by at most one record.
func Split(flowers []model.Flower, nFolds int) ([][]model.Flower, error) {
	if nFolds < 1 || nFolds > len(flowers) {
		return nil, fmt.Errorf("%w: folds %d, dataset %d", ErrFoldsInvalid, nFolds, len(flowers))
	}
	folds := make([][]model.Flower, nFolds)
	for i, f := range flowers {
		idx := i % nFolds
		folds[idx] = append(folds[idx], f)
	}
	return folds, nil
}

// Accuracy returns the percentage of position-wise exact label matches.
func Accuracy(actual, predicted []string) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: actual %d, predicted %d", ErrLenMismatch, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, fmt.Errorf("%w: empty sequences", ErrLenMismatch)
	}
	var correct int
	for i := range actual {
		if actual[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(actual)) * 100, nil
}

// Mean averages the per-fold scores.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Evaluate runs one train/test round per fold: the held-out fold is
// the test set, the concatenation of the remaining folds in fold order
// is the training set. Folds run concurrently; the result is invariant
// to execution order, scores are indexed by fold. A single fold trains
// and tests on the same records.
func Evaluate(ctx context.Context, flowers []model.Flower, classifyFn ClassifyFn, nFolds, kNum int) ([]float64, error) {
	logger := logging.FromContext(ctx)
	folds, err := Split(flowers, nFolds)
	if err != nil {
		return nil, fmt.Errorf("unable to split dataset: %w", err)
	}
	scores := make([]float64, len(folds))
	errGrp := errgroup.Group{}
	for i := range folds {
		i := i
		errGrp.Go(func() error {
			testFold := folds[i]
			var train []classifier.DataPoint
			if len(folds) == 1 {
				train = model.DataPoints(testFold)
			} else {
				for j, fold := range folds {
					if j == i {
						continue
					}
					train = append(train, model.DataPoints(fold)...)
				}
			}
			predicted := make([]string, len(testFold))
			for j, row := range testFold {
				prediction, err := classifyFn(train, row.Vec, kNum)
				if err != nil {
					return fmt.Errorf("fold %d: %w", i, err)
				}
				predicted[j] = prediction.Label
			}
			score, err := Accuracy(model.Labels(testFold), predicted)
			if err != nil {
				return fmt.Errorf("fold %d: %w", i, err)
			}
			logger.Debugf("fold %d evaluated, accuracy %.2f%%", i, score)
			scores[i] = score
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
