package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"petal/internal/classifier"
	"petal/internal/geom"
	"petal/internal/httputil"
	"petal/internal/logging"
	"petal/internal/metrics"
)

const maxBodyBytes = 64 * 1024 * 1024

type request struct {
	Data []struct {
		Vec   []float64   `json:"vector"`
		Extra interface{} `json:"extra"`
	} `json:"data"`
}

type responseItem struct {
	Class string      `json:"class"`
	Votes int         `json:"votes"`
	Vec   []float64   `json:"vector"`
	Extra interface{} `json:"extra"`
}

type response struct {
	Data []responseItem `json:"data"`
}

// NewHandler classifies submitted feature vectors against the loaded
// training set. The training set is the model; nothing is fitted
// ahead of serving.
func NewHandler(cfg *Config, c classifier.Classifier, train []classifier.DataPoint, kNum int) (http.Handler, error) {
	if kNum > len(train) {
		return nil, fmt.Errorf("k num %d exceeds training set size %d", kNum, len(train))
	}
	return &handler{
		cfg:        cfg,
		classifier: c,
		train:      train,
		kNum:       kNum,
	}, nil
}

type handler struct {
	cfg        *Config
	classifier classifier.Classifier
	train      []classifier.DataPoint
	kNum       int
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	started := time.Now()
	defer func() {
		metrics.RequestDuration.WithLabelValues("/predict").Observe(time.Since(started).Seconds())
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

	if t := r.Header.Get("content-type"); len(t) < 16 || t[:16] != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		logger.Debug(fmt.Sprintf(`{"error": "%v"}`, "content-type is not application/json"))
		_, _ = fmt.Fprintf(w, `{"error": "%v"}`, "content-type is not application/json")
		return
	}

	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	d := json.NewDecoder(r.Body)
	if err := d.Decode(&req); err != nil {
		httputil.DecodeErr(ctx, w, err)
		return
	}

	if len(req.Data) > h.cfg.MaxDataItemsLen {
		httputil.RespBadRequest(ctx, w, `{"error": "data items is too large, max allowed len is %d"}`, h.cfg.MaxDataItemsLen)
		return
	}

	respData := make([]responseItem, len(req.Data))
	errGrp := errgroup.Group{}
	mtx := sync.Mutex{}
	for i, dat := range req.Data {
		i, dat := i, dat
		errGrp.Go(func() error {
			prediction, err := h.classifier.Predict(h.train, geom.New(dat.Vec), h.kNum)
			if err != nil {
				return fmt.Errorf("predict error: %v", err)
			}
			metrics.PredictionsTotal.WithLabelValues(prediction.Label).Inc()
			mtx.Lock()
			respData[i] = responseItem{
				Class: prediction.Label,
				Votes: prediction.Votes,
				Vec:   dat.Vec,
				Extra: dat.Extra,
			}
			mtx.Unlock()
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		httputil.RespBadRequest(ctx, w, `{"error": "predict processing error, %v"}`, err)
		return
	}
	bytes, err := json.Marshal(response{Data: respData})
	if err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "failed to encode output json %v"}`, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "%s", bytes)
}
