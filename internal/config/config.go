package config

import (
	"petal/internal/classifier/knn"
	"petal/internal/crossval"
	"petal/internal/database"
	"petal/internal/evaluate"
	"petal/internal/experiment"
	"petal/internal/flower/dataset"
	"petal/internal/predict"
	"petal/internal/setup"
)

var (
	_ setup.DatabaseConfigProvider   = (*Config)(nil)
	_ setup.DatasetConfigProvider    = (*Config)(nil)
	_ setup.ClassifierConfigProvider = (*Config)(nil)
)

type Config struct {
	SrvAddr    string `envconfig:"PETAL_ADDR" default:":8787"`
	Dataset    dataset.Config
	Classifier knn.Config
	Crossval   crossval.Config
	Database   database.Config
	Predict    predict.Config
	Evaluate   evaluate.Config
	Experiment experiment.Config
}

// DatasetConfig is nil when an experiments file drives the run; each
// experiment names its own dataset.
func (c Config) DatasetConfig() *dataset.Config {
	if c.Experiment.Path != "" {
		return nil
	}
	return &c.Dataset
}

func (c Config) ClassifierConfig() *knn.Config {
	return &c.Classifier
}

func (c Config) CrossvalConfig() *crossval.Config {
	return &c.Crossval
}

func (c Config) DatabaseConfig() *database.Config {
	return &c.Database
}
