package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petal/internal/buildinfo"
	petal "petal/internal/config"
	"petal/internal/evaluate"
	"petal/internal/flower/model"
	"petal/internal/logging"
	"petal/internal/predict"
	reportDb "petal/internal/report/database"
	"petal/internal/server"
	"petal/internal/setup"
	"petal/internal/shutdown"
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
	config := petal.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close(ctx)

	c, err := env.ProvideClassifier()()
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}
	reports := reportDb.New(env.Database())

	srv, err := server.New(config.SrvAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	mux := http.NewServeMux()

	predictHandler, err := predict.NewHandler(
		&config.Predict, c, model.DataPoints(env.Flowers()), config.Classifier.KNum,
	)
	if err != nil {
		return fmt.Errorf("predict.NewHandler: %w", err)
	}

	evaluateHandler, err := evaluate.NewHandler(
		&config.Evaluate,
		env.Flowers(),
		c.Predict,
		evaluate.Run{
			Dataset:    config.Dataset.Path,
			Folds:      config.Crossval.Folds,
			KNum:       config.Classifier.KNum,
			Distance:   string(config.Classifier.MetricFuncType),
			Normalized: config.Dataset.Normalize,
		},
		reports,
	)
	if err != nil {
		return fmt.Errorf("evaluate.NewHandler: %w", err)
	}

	mux.Handle("/predict", predictHandler)
	mux.Handle("/evaluate", evaluateHandler)
	mux.Handle("/health", server.HandleHealth(ctx))
	mux.Handle("/metrics", promhttp.Handler())

	return srv.ServeHTTPHandler(ctx, mux)
}
