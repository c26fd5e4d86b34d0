// Package dataset loads labeled flower records from delimited text.
// The evaluation pipeline consumes the materialized slice; nothing is
// streamed.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"petal/internal/flower/model"
	"petal/internal/geom"
)

const fieldNum = model.FeatureNum + 1

func FromFile(path string) ([]model.Flower, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset %s: %w", path, err)
	}
	defer f.Close()

	flowers, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse dataset %s: %w", path, err)
	}
	return flowers, nil
}

// FromReader parses comma-separated rows of four numeric features and
// a class label. A leading header row is skipped.
func FromReader(r io.Reader) ([]model.Flower, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldNum

	var flowers []model.Flower
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		vec := make(geom.Point, model.FeatureNum)
		parsed := true
		for i := 0; i < model.FeatureNum; i++ {
			value, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				parsed = false
				break
			}
			vec[i] = value
		}
		if !parsed {
			if row == 0 {
				continue
			}
			return nil, fmt.Errorf("row %d: features must be numeric, got %v", row, record[:model.FeatureNum])
		}
		if record[model.FeatureNum] == "" {
			return nil, fmt.Errorf("row %d: class label is empty", row)
		}
		flowers = append(flowers, model.NewFlower(vec, record[model.FeatureNum]))
	}
	if len(flowers) == 0 {
		return nil, fmt.Errorf("dataset contains no records")
	}
	return flowers, nil
}
