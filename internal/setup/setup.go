package setup

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/kelseyhightower/envconfig"

	"petal/internal/classifier"
	"petal/internal/classifier/knn"
	"petal/internal/database"
	"petal/internal/flower/dataset"
	"petal/internal/logging"
	"petal/internal/normalize"
	"petal/internal/srvenv"
)

type DatabaseConfigProvider interface {
	DatabaseConfig() *database.Config
}

type DatasetConfigProvider interface {
	DatasetConfig() *dataset.Config
}

type ClassifierConfigProvider interface {
	ClassifierConfig() *knn.Config
}

// Setup processes the environment into the config and wires the
// server environment: database, dataset and classifier provider.
func Setup(ctx context.Context, config interface{}) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)
	var serverEnvOpts []srvenv.Option
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	logger.Debugf("config processed: %s", spew.Sdump(config))

	if dbConfigProvider, ok := config.(DatabaseConfigProvider); ok {
		logger.Info("Configuring db")
		dbFromEnv, err := database.NewFromEnv(ctx, dbConfigProvider.DatabaseConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %v", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDatabase(dbFromEnv))
	}

	if datasetConfigProvider, ok := config.(DatasetConfigProvider); ok && datasetConfigProvider.DatasetConfig() != nil {
		logger.Info("Configuring dataset")
		cfg := datasetConfigProvider.DatasetConfig()
		flowers, err := dataset.FromFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("unable to load dataset: %w", err)
		}
		if cfg.Normalize {
			// statistics cover the whole dataset before any fold split,
			// matching the reference algorithm
			stats, err := normalize.Fit(flowers)
			if err != nil {
				return nil, fmt.Errorf("unable to fit normalization stats: %w", err)
			}
			if flowers, err = normalize.Transform(flowers, stats); err != nil {
				return nil, fmt.Errorf("unable to normalize dataset: %w", err)
			}
			serverEnvOpts = append(serverEnvOpts, srvenv.WithStats(stats))
		}
		logger.Infof("dataset %s loaded, %d records", cfg.Path, len(flowers))
		serverEnvOpts = append(serverEnvOpts, srvenv.WithFlowers(flowers))
	}

	if classifierConfigProvider, ok := config.(ClassifierConfigProvider); ok {
		logger.Info("Configuring classifier")
		provideFn, err := ProvideClassifierFor(classifierConfigProvider.ClassifierConfig())
		if err != nil {
			return nil, fmt.Errorf("unable create classifier provide function: %v", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithClassifier(provideFn))
	}

	return srvenv.New(serverEnvOpts...), nil
}

func ProvideClassifierFor(cfg *knn.Config) (classifier.ProvideFn, error) {
	if _, err := knn.DistanceFuncFor(cfg.MetricFuncType); err != nil {
		return nil, err
	}
	return func() (classifier.Classifier, error) {
		c, err := knn.New(knn.WithDistanceFuncType(cfg.MetricFuncType))
		if err != nil {
			return nil, err
		}
		return c, nil
	}, nil
}
