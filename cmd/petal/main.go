package main

import (
	"context"
	"fmt"
	"os"

	"petal/internal/buildinfo"
	"petal/internal/classifier"
	petal "petal/internal/config"
	"petal/internal/crossval"
	"petal/internal/experiment"
	"petal/internal/flower/model"
	"petal/internal/logging"
	"petal/internal/normalize"
	reportDb "petal/internal/report/database"
	reportModel "petal/internal/report/model"
	"petal/internal/setup"
	"petal/internal/shutdown"
	"petal/internal/srvenv"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx); err != nil {
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	config := petal.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close(ctx)

	reports := reportDb.New(env.Database())

	if config.Experiment.Path != "" {
		return runExperiments(ctx, config.Experiment.Path, reports)
	}

	c, err := env.ProvideClassifier()()
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}

	flowers := env.Flowers()
	scores, err := crossval.Evaluate(ctx, flowers, c.Predict, config.Crossval.Folds, config.Classifier.KNum)
	if err != nil {
		return fmt.Errorf("crossval.Evaluate: %w", err)
	}

	mean := crossval.Mean(scores)
	logger.Infof("scores: %v", scores)
	logger.Infof("mean accuracy: %.2f%%", mean)

	report := reportModel.NewReport(
		config.Dataset.Path,
		config.Classifier.KNum,
		config.Crossval.Folds,
		string(config.Classifier.MetricFuncType),
		config.Dataset.Normalize,
		scores,
		mean,
	)
	if err := reports.Store(ctx, report); err != nil {
		return fmt.Errorf("unable to store evaluation report: %w", err)
	}
	logger.Infof("evaluation report %s stored", report.ID)

	return examplePrediction(ctx, c, env, config.Classifier.KNum)
}

// examplePrediction classifies one random flower against the full
// dataset, the way the reference pipeline demonstrates a single ad-hoc
// query.
func examplePrediction(ctx context.Context, c classifier.Classifier, env *srvenv.SrvEnv, kNum int) error {
	logger := logging.FromContext(ctx)
	query := model.Rand()
	if stats := env.Stats(); stats != nil {
		scaled, err := normalize.Transform([]model.Flower{query}, stats)
		if err != nil {
			return fmt.Errorf("unable to normalize query: %w", err)
		}
		query = scaled[0]
	}
	prediction, err := c.Predict(model.DataPoints(env.Flowers()), query.Vec, kNum)
	if err != nil {
		return fmt.Errorf("example prediction error: %w", err)
	}
	logger.Infof(
		"example prediction: %v -> %s (%d of %d votes)",
		query.Vec, prediction.Label, prediction.Votes, prediction.KNum,
	)
	return nil
}

func runExperiments(ctx context.Context, path string, reports *reportDb.DB) error {
	logger := logging.FromContext(ctx)
	experiments, err := experiment.FromFile(path)
	if err != nil {
		return fmt.Errorf("experiment.FromFile: %w", err)
	}
	for _, exp := range experiments {
		runReports, err := experiment.Run(ctx, exp)
		if err != nil {
			return fmt.Errorf("experiment.Run: %w", err)
		}
		for _, report := range runReports {
			if err := reports.Store(ctx, report); err != nil {
				return fmt.Errorf("unable to store experiment report: %w", err)
			}
		}
	}
	logger.Infof("%d experiments finished", len(experiments))
	return nil
}
