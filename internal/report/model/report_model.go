package model

import (
	"time"

	"github.com/google/uuid"
)

// NewReport records the outcome of one cross-validation run.
func NewReport(dataset string, kNum, folds int, distance string, normalized bool, scores []float64, mean float64) Report {
	return Report{
		ID:         uuid.New(),
		Dataset:    dataset,
		KNum:       kNum,
		Folds:      folds,
		Distance:   distance,
		Normalized: normalized,
		Scores:     scores,
		Mean:       mean,
		CreatedAt:  time.Now(),
	}
}

type Report struct {
	ID         uuid.UUID `json:"id"`
	Dataset    string    `json:"dataset"`
	KNum       int       `json:"kNum"`
	Folds      int       `json:"folds"`
	Distance   string    `json:"distance"`
	Normalized bool      `json:"normalized"`
	Scores     []float64 `json:"scores"`
	Mean       float64   `json:"mean"`
	CreatedAt  time.Time `json:"createdAt"`
}
