package crossval

import (
	"context"
	"errors"
	"testing"

	"petal/internal/classifier/knn"
	"petal/internal/flower/model"
	"petal/internal/geom"
)

func grid(n int) []model.Flower {
	flowers := make([]model.Flower, n)
	for i := 0; i < n; i++ {
		class := "setosa"
		if i%2 == 1 {
			class = "virginica"
		}
		base := float64(i % 2 * 10)
		flowers[i] = model.NewFlower(geom.Point{base, base, base, base}, class)
	}
	return flowers
}

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		n      int
		nFolds int
	}{
		{name: "positive_even", n: 10, nFolds: 5},
		{name: "positive_uneven", n: 11, nFolds: 3},
		{name: "positive_single", n: 4, nFolds: 1},
		{name: "positive_max", n: 4, nFolds: 4},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			flowers := grid(test.n)
			folds, err := Split(flowers, test.nFolds)
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if len(folds) != test.nFolds {
				t.Fatalf("fold count got: %v, expected: %v", len(folds), test.nFolds)
			}
			seen := map[string]int{}
			total := 0
			for _, fold := range folds {
				size := len(fold)
				if size != test.n/test.nFolds && size != test.n/test.nFolds+1 {
					t.Errorf("fold size got: %v, expected: %v or %v", size, test.n/test.nFolds, test.n/test.nFolds+1)
				}
				total += size
				for _, f := range fold {
					seen[f.ID.String()]++
				}
			}
			if total != test.n {
				t.Errorf("folds must cover the dataset, got: %v, expected: %v", total, test.n)
			}
			for id, count := range seen {
				if count != 1 {
					t.Errorf("record %s assigned to %d folds, expected: 1", id, count)
				}
			}
		})
	}
}

func TestSplitDeterminism(t *testing.T) {
	t.Parallel()
	flowers := grid(17)
	first, err := Split(flowers, 5)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	second, err := Split(flowers, 5)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	for i := range first {
		if len(first[i]) != len(second[i]) {
			t.Fatalf("fold %d sizes differ, got: %v and %v", i, len(first[i]), len(second[i]))
		}
		for j := range first[i] {
			if first[i][j].ID != second[i][j].ID {
				t.Errorf("fold %d record %d differs between runs", i, j)
			}
		}
	}
}

func TestSplitErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		n      int
		nFolds int
	}{
		{name: "err_zero", n: 4, nFolds: 0},
		{name: "err_negative", n: 4, nFolds: -1},
		{name: "err_exceeds", n: 4, nFolds: 5},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Split(grid(test.n), test.nFolds); !errors.Is(err, ErrFoldsInvalid) {
				t.Errorf("splitting got: %v, expected: %v", err, ErrFoldsInvalid)
			}
		})
	}
}

func TestAccuracy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		actual    []string
		predicted []string
		expected  float64
		wantErr   bool
	}{
		{name: "positive_all", actual: []string{"a", "b", "c"}, predicted: []string{"a", "b", "c"}, expected: 100},
		{name: "positive_none", actual: []string{"a", "b"}, predicted: []string{"b", "a"}, expected: 0},
		{name: "positive_half", actual: []string{"a", "b", "a", "b"}, predicted: []string{"a", "a", "a", "a"}, expected: 50},
		{name: "err_mismatch", actual: []string{"a", "b"}, predicted: []string{"a"}, wantErr: true},
		{name: "err_empty", actual: nil, predicted: nil, wantErr: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := Accuracy(test.actual, test.predicted)
			if test.wantErr {
				if !errors.Is(err, ErrLenMismatch) {
					t.Errorf("scoring got: %v, expected: %v", err, ErrLenMismatch)
				}
				return
			}
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if got != test.expected {
				t.Errorf("accuracy got: %v, expected: %v", got, test.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("accuracy out of bounds, got: %v", got)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	c, err := knn.New()
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	// two well-separated clusters, every fold should score 100
	flowers := grid(20)
	scores, err := Evaluate(context.Background(), flowers, c.Predict, 5, 3)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("score count got: %v, expected: 5", len(scores))
	}
	for i, score := range scores {
		if score != 100 {
			t.Errorf("fold %d accuracy got: %v, expected: 100", i, score)
		}
	}
	if mean := Mean(scores); mean != 100 {
		t.Errorf("mean accuracy got: %v, expected: 100", mean)
	}
}

func TestEvaluateSingleFold(t *testing.T) {
	t.Parallel()
	c, err := knn.New()
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	scores, err := Evaluate(context.Background(), grid(6), c.Predict, 1, 3)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("score count got: %v, expected: 1", len(scores))
	}
}

func TestEvaluateClassifyError(t *testing.T) {
	t.Parallel()
	c, err := knn.New()
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	// k exceeds every possible training set, the evaluation must abort
	if _, err := Evaluate(context.Background(), grid(6), c.Predict, 3, 5); err == nil {
		t.Errorf("evaluation with oversized k must fail, got: nil")
	}
}

func TestMean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		scores   []float64
		expected float64
	}{
		{name: "positive", scores: []float64{100, 50}, expected: 75},
		{name: "positive_empty", scores: nil, expected: 0},
	}
	for _, test := range tests {
		if got := Mean(test.scores); got != test.expected {
			t.Errorf("%s: mean got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}
