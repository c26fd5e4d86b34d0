package knn

import (
	"fmt"

	"petal/internal/classifier"
	"petal/pkg/pqueue"
)

var _ classifier.Classifier = (*knn)(nil)

var (
	ErrKNumInvalid      = fmt.Errorf("k num must be positive")
	ErrKNumExceedsTrain = fmt.Errorf("k num exceeds training set size")
	ErrEmptyTrain       = fmt.Errorf("training set is empty")
)

type Option func(*knn)

func WithDistance(f func(vec, vec1 []float64) (float64, error)) Option {
	return func(c *knn) {
		c.distFunc = f
	}
}

func WithDistanceFuncType(d DistanceFuncType) Option {
	return func(c *knn) {
		c.opts.distanceFuncType = d
	}
}

var defaultOptions = Options{distanceFuncType: DistanceFuncTypeEuclidean}

type Options struct {
	distanceFuncType DistanceFuncType
}

func New(opts ...Option) (*knn, error) {
	c := &knn{opts: defaultOptions}
	for _, f := range opts {
		f(c)
	}
	if c.distFunc == nil {
		distFunc, err := DistanceFuncFor(c.opts.distanceFuncType)
		if err != nil {
			return nil, fmt.Errorf("unable creating knn instance, %v", err)
		}
		c.distFunc = distFunc
	}
	return c, nil
}

type knn struct {
	opts     Options
	distFunc func(vec, vec1 []float64) (float64, error)
}

// Neighbors ranks every training point by distance to the query and
// returns the k closest labels in ascending-distance order. Equal
// distances keep the training order (the ranking queue is stable).
func (c *knn) Neighbors(train []classifier.DataPoint, query classifier.Vector, k int) ([]string, error) {
	if k < 1 {
		return nil, ErrKNumInvalid
	}
	if len(train) == 0 {
		return nil, ErrEmptyTrain
	}
	if k > len(train) {
		return nil, fmt.Errorf("%w: k %d, train %d", ErrKNumExceedsTrain, k, len(train))
	}
	pq := pqueue.New(pqueue.WithOrderAsc(), pqueue.WithCap(uint(k)))
	for _, row := range train {
		distance, err := c.distFunc(query.Points(), row.Vector().Points())
		if err != nil {
			return nil, fmt.Errorf(
				"unable to compute distance between %v and %v: %w",
				query.Points(), row.Vector().Points(),
				err,
			)
		}
		pq.Push(row, distance)
	}
	neighbors := make([]string, pq.Len())
	for i, data := range pq.PopAll() {
		neighbors[i] = data.(classifier.DataPoint).Label()
	}
	return neighbors, nil
}

// Predict aggregates the k nearest labels by majority vote. When
// several labels share the maximum count the winner is the one whose
// first occurrence in the neighbor list is closest to the query.
func (c *knn) Predict(train []classifier.DataPoint, query classifier.Vector, k int) (*classifier.Prediction, error) {
	neighbors, err := c.Neighbors(train, query, k)
	if err != nil {
		return nil, fmt.Errorf("unable to predict %v, %w", query.Points(), err)
	}
	counts := make(map[string]int, len(neighbors))
	for _, label := range neighbors {
		counts[label]++
	}
	var (
		best  string
		votes int
	)
	for _, label := range neighbors {
		if counts[label] > votes {
			best = label
			votes = counts[label]
		}
	}
	return &classifier.Prediction{Label: best, Votes: votes, KNum: k}, nil
}
