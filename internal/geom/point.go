package geom

// Point is a fixed-arity feature vector. Loaded points are never
// resized; normalization produces copies rather than rewriting.
type Point []float64

func New(vec []float64) Point {
	return vec
}

func (v Point) Dimensions() int {
	return len(v)
}

func (v Point) Dim(idx int) float64 {
	return v[idx]
}

func (v Point) Points() []float64 {
	return v
}

func (v Point) Copy() Point {
	var v1 = make(Point, len(v))
	copy(v1, v)
	return v1
}

// Map returns a new point with applyFn applied to every dimension.
func (v Point) Map(applyFn func(idx int, value float64) float64) Point {
	var v1 = make(Point, len(v))
	for i := range v {
		v1[i] = applyFn(i, v[i])
	}
	return v1
}

func (v Point) SizeEqual(vec Point) bool {
	return len(v) == len(vec)
}

func (v Point) Equal(vec Point) bool {
	if len(v) != len(vec) {
		return false
	}
	for i, value := range v {
		if vec[i] != value {
			return false
		}
	}
	return true
}
