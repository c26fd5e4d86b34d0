package model

import (
	"testing"

	"petal/internal/geom"
)

func TestRand(t *testing.T) {
	t.Parallel()
	for i := 0; i < 100; i++ {
		f := Rand()
		if f.Vec.Dimensions() != FeatureNum {
			t.Fatalf("feature count got: %v, expected: %v", f.Vec.Dimensions(), FeatureNum)
		}
		for j := 0; j < FeatureNum; j++ {
			value := f.Vec.Dim(j)
			if value < 0.1 || value >= 7.0 {
				t.Errorf("feature %d out of range, got: %v", j, value)
			}
		}
		if len(f.Class) != randClassLen {
			t.Errorf("class length got: %v, expected: %v", len(f.Class), randClassLen)
		}
	}
}

func TestDataPoints(t *testing.T) {
	t.Parallel()
	flowers := []Flower{
		NewFlower(geom.Point{1, 2, 3, 4}, "setosa"),
		NewFlower(geom.Point{4, 3, 2, 1}, "virginica"),
	}
	points := DataPoints(flowers)
	if len(points) != len(flowers) {
		t.Fatalf("point count got: %v, expected: %v", len(points), len(flowers))
	}
	for i := range points {
		if points[i].Label() != flowers[i].Class {
			t.Errorf("point %d label got: %v, expected: %v", i, points[i].Label(), flowers[i].Class)
		}
		if !flowers[i].Vec.Equal(geom.New(points[i].Vector().Points())) {
			t.Errorf("point %d vector does not match the source flower", i)
		}
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()
	flowers := []Flower{
		NewFlower(geom.Point{1, 2, 3, 4}, "setosa"),
		NewFlower(geom.Point{4, 3, 2, 1}, "virginica"),
	}
	labels := Labels(flowers)
	expected := []string{"setosa", "virginica"}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %d got: %v, expected: %v", i, labels[i], expected[i])
		}
	}
}
