package classifier

// Contract for returning the Classifier instance
type ProvideFn func() (Classifier, error)

type PointsDistanceFn func(vec, vec1 []float64) (float64, error)

type Vector interface {
	Dim(idx int) float64
	Dimensions() int
	Points() []float64
}

// DataPoint is a labeled training record. The training set itself is
// the model; nothing is fitted ahead of prediction.
type DataPoint interface {
	Vector() Vector
	Label() string
}

type Classifier interface {
	// Neighbors returns the labels of the k training points closest to
	// the query, ordered by ascending distance.
	Neighbors(train []DataPoint, query Vector, k int) ([]string, error)
	// Predict returns the majority label among the k nearest neighbors.
	Predict(train []DataPoint, query Vector, k int) (*Prediction, error)
}

type Prediction struct {
	Label string
	Votes int
	KNum  int
}
