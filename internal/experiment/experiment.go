// Package experiment runs evaluation sweeps described in a toml file.
package experiment

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"

	"petal/internal/classifier/knn"
	"petal/internal/crossval"
	"petal/internal/flower/dataset"
	"petal/internal/logging"
	"petal/internal/normalize"
	reportModel "petal/internal/report/model"
)

type File struct {
	Experiments []Experiment `toml:"experiment"`
}

// Experiment is one sweep entry: a dataset evaluated at every listed k.
type Experiment struct {
	Name      string `toml:"name"`
	Dataset   string `toml:"dataset"`
	Folds     int    `toml:"folds"`
	KNums     []int  `toml:"k_nums"`
	Distance  string `toml:"distance"`
	Normalize bool   `toml:"normalize"`
}

func FromFile(path string) ([]Experiment, error) {
	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("unable to parse experiments file %s: %w", path, err)
	}
	return prepare(file)
}

func Parse(raw string) ([]Experiment, error) {
	var file File
	if _, err := toml.Decode(raw, &file); err != nil {
		return nil, fmt.Errorf("unable to parse experiments: %w", err)
	}
	return prepare(file)
}

func prepare(file File) ([]Experiment, error) {
	if len(file.Experiments) == 0 {
		return nil, fmt.Errorf("experiments file contains no experiments")
	}
	for i := range file.Experiments {
		exp := &file.Experiments[i]
		if exp.Dataset == "" {
			return nil, fmt.Errorf("experiment %q: dataset path is required", exp.Name)
		}
		if exp.Folds == 0 {
			exp.Folds = 5
		}
		if len(exp.KNums) == 0 {
			exp.KNums = []int{5}
		}
		if exp.Distance == "" {
			exp.Distance = string(knn.DistanceFuncTypeEuclidean)
		}
	}
	return file.Experiments, nil
}

// Run loads the experiment dataset and evaluates it at every listed k,
// returning one report per k.
func Run(ctx context.Context, exp Experiment) ([]reportModel.Report, error) {
	logger := logging.FromContext(ctx)
	flowers, err := dataset.FromFile(exp.Dataset)
	if err != nil {
		return nil, fmt.Errorf("experiment %q: %w", exp.Name, err)
	}
	if exp.Normalize {
		stats, err := normalize.Fit(flowers)
		if err != nil {
			return nil, fmt.Errorf("experiment %q: %w", exp.Name, err)
		}
		if flowers, err = normalize.Transform(flowers, stats); err != nil {
			return nil, fmt.Errorf("experiment %q: %w", exp.Name, err)
		}
	}
	c, err := knn.New(knn.WithDistanceFuncType(knn.DistanceFuncType(exp.Distance)))
	if err != nil {
		return nil, fmt.Errorf("experiment %q: %w", exp.Name, err)
	}
	reports := make([]reportModel.Report, 0, len(exp.KNums))
	for _, kNum := range exp.KNums {
		scores, err := crossval.Evaluate(ctx, flowers, c.Predict, exp.Folds, kNum)
		if err != nil {
			return nil, fmt.Errorf("experiment %q k=%d: %w", exp.Name, kNum, err)
		}
		report := reportModel.NewReport(
			exp.Dataset, kNum, exp.Folds, exp.Distance, exp.Normalize,
			scores, crossval.Mean(scores),
		)
		logger.Infof("experiment %q k=%d mean accuracy %.2f%%", exp.Name, kNum, report.Mean)
		reports = append(reports, report)
	}
	return reports, nil
}
