// Package evaluate serves cross-validation runs over the loaded
// dataset and records their reports.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"petal/internal/crossval"
	"petal/internal/flower/model"
	"petal/internal/httputil"
	"petal/internal/logging"
	"petal/internal/metrics"
	reportDb "petal/internal/report/database"
	reportModel "petal/internal/report/model"
)

const maxBodyBytes = 1024 * 1024

// Run describes the evaluation defaults the handler falls back to
// when a request leaves folds or k unset.
type Run struct {
	Dataset    string
	Folds      int
	KNum       int
	Distance   string
	Normalized bool
}

type request struct {
	Folds int `json:"folds"`
	KNum  int `json:"kNum"`
}

type response struct {
	ID     string    `json:"id"`
	Folds  int       `json:"folds"`
	KNum   int       `json:"kNum"`
	Scores []float64 `json:"scores"`
	Mean   float64   `json:"mean"`
}

func NewHandler(cfg *Config, flowers []model.Flower, classifyFn crossval.ClassifyFn, run Run, reports *reportDb.DB) (http.Handler, error) {
	if len(flowers) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	return &handler{
		cfg:        cfg,
		flowers:    flowers,
		classifyFn: classifyFn,
		run:        run,
		reports:    reports,
	}, nil
}

type handler struct {
	cfg        *Config
	flowers    []model.Flower
	classifyFn crossval.ClassifyFn
	run        Run
	reports    *reportDb.DB
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	started := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("/evaluate").Observe(time.Since(started).Seconds())
	}()
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		logger.Debug(fmt.Sprintf(`{"error": "method %v is not allowed"}`, r.Method))
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return
	}

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	if err := d.Decode(&req); err != nil {
		httputil.DecodeErr(ctx, w, err)
		return
	}

	folds, kNum := h.run.Folds, h.run.KNum
	if req.Folds > 0 {
		folds = req.Folds
	}
	if req.KNum > 0 {
		kNum = req.KNum
	}

	scores, err := crossval.Evaluate(ctx, h.flowers, h.classifyFn, folds, kNum)
	if err != nil {
		httputil.RespBadRequest(ctx, w, `{"error": "evaluation error, %v"}`, err)
		return
	}
	metrics.EvaluationsTotal.Inc()

	report := reportModel.NewReport(
		h.run.Dataset, kNum, folds, h.run.Distance, h.run.Normalized,
		scores, crossval.Mean(scores),
	)
	if h.reports != nil {
		if err := h.reports.Store(ctx, report); err != nil {
			logger.Errorf("unable to store evaluation report: %v", err)
		}
	}

	bytes, err := json.Marshal(response{
		ID:     report.ID.String(),
		Folds:  folds,
		KNum:   kNum,
		Scores: scores,
		Mean:   report.Mean,
	})
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "failed to encode output json %v"}`, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "%s", bytes)
}
