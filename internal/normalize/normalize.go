// Package normalize rescales feature columns to [0, 1] with min-max
// statistics.
package normalize

import (
	"fmt"

	"petal/internal/flower/model"
)

var (
	ErrEmptyDataset = fmt.Errorf("dataset is empty")
	ErrZeroRange    = fmt.Errorf("column has zero value range")
)

type ColumnStat struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Stats holds one ColumnStat per feature column.
type Stats []ColumnStat

// Fit computes per-column min/max over the entire dataset. The
// statistics deliberately cover the full dataset before any fold
// split; the reference algorithm is defined that way.
func Fit(flowers []model.Flower) (Stats, error) {
	if len(flowers) == 0 {
		return nil, ErrEmptyDataset
	}
	dims := flowers[0].Vec.Dimensions()
	stats := make(Stats, dims)
	for i := 0; i < dims; i++ {
		stats[i] = ColumnStat{Min: flowers[0].Vec.Dim(i), Max: flowers[0].Vec.Dim(i)}
	}
	for _, f := range flowers {
		if f.Vec.Dimensions() != dims {
			return nil, fmt.Errorf("flower %s: dimensions %d, expected %d", f.ID, f.Vec.Dimensions(), dims)
		}
		for i := 0; i < dims; i++ {
			value := f.Vec.Dim(i)
			if value < stats[i].Min {
				stats[i].Min = value
			}
			if value > stats[i].Max {
				stats[i].Max = value
			}
		}
	}
	for i := range stats {
		if stats[i].Max == stats[i].Min {
			return nil, fmt.Errorf("%w: column %d", ErrZeroRange, i)
		}
	}
	return stats, nil
}

// Transform returns a new dataset with every feature rescaled to
// (value - min) / (max - min). The source flowers are not touched.
func Transform(flowers []model.Flower, stats Stats) ([]model.Flower, error) {
	scaled := make([]model.Flower, len(flowers))
	for i, f := range flowers {
		if f.Vec.Dimensions() != len(stats) {
			return nil, fmt.Errorf("flower %s: dimensions %d, expected %d", f.ID, f.Vec.Dimensions(), len(stats))
		}
		f.Vec = f.Vec.Map(func(idx int, value float64) float64 {
			return (value - stats[idx].Min) / (stats[idx].Max - stats[idx].Min)
		})
		scaled[i] = f
	}
	return scaled, nil
}

// Invert applies the inverse affine map, recovering original feature
// values from a transformed dataset.
func Invert(flowers []model.Flower, stats Stats) ([]model.Flower, error) {
	restored := make([]model.Flower, len(flowers))
	for i, f := range flowers {
		if f.Vec.Dimensions() != len(stats) {
			return nil, fmt.Errorf("flower %s: dimensions %d, expected %d", f.ID, f.Vec.Dimensions(), len(stats))
		}
		f.Vec = f.Vec.Map(func(idx int, value float64) float64 {
			return value*(stats[idx].Max-stats[idx].Min) + stats[idx].Min
		})
		restored[i] = f
	}
	return restored, nil
}
