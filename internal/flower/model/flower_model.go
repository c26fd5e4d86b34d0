package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fastrand"

	"petal/internal/classifier"
	"petal/internal/geom"
)

// FeatureNum is the fixed arity of a flower feature vector: sepal
// length, sepal width, petal length, petal width.
const FeatureNum = 4

func NewFlower(vec geom.Point, class string) Flower {
	return Flower{
		ID:        uuid.New(),
		Vec:       vec,
		Class:     class,
		CreatedAt: time.Now(),
	}
}

var _ classifier.DataPoint = (*Flower)(nil)

type Flower struct {
	ID        uuid.UUID  `json:"id"`
	Vec       geom.Point `json:"vector"`
	Class     string     `json:"class"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (f Flower) Vector() classifier.Vector {
	return f.Vec
}

func (f Flower) Label() string {
	return f.Class
}

// DataPoints converts a flower slice to the classifier contract.
func DataPoints(flowers []Flower) []classifier.DataPoint {
	points := make([]classifier.DataPoint, len(flowers))
	for i := range flowers {
		points[i] = flowers[i]
	}
	return points
}

// Labels returns the class of every flower in order.
func Labels(flowers []Flower) []string {
	labels := make([]string, len(flowers))
	for i := range flowers {
		labels[i] = flowers[i].Class
	}
	return labels
}

const (
	randClassLen  = 7
	randAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randRangeMin  = 0.1
	randRangeSpan = 6.9
)

// Rand returns a flower with features uniform in [0.1, 7.0) and a
// random alphanumeric class.
func Rand() Flower {
	vec := make(geom.Point, FeatureNum)
	for i := range vec {
		vec[i] = randRangeMin + randRangeSpan*float64(fastrand.Uint32())/float64(math.MaxUint32)
	}
	class := make([]byte, randClassLen)
	for i := range class {
		class[i] = randAlphabet[fastrand.Uint32n(uint32(len(randAlphabet)))]
	}
	return NewFlower(vec, string(class))
}
