package database

import (
	"context"
	"path/filepath"
	"testing"

	"petal/internal/database"
	"petal/internal/report/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	sDB, err := database.NewFromEnv(ctx, &database.Config{
		FileName: filepath.Join(t.TempDir(), "petal-test.db"),
	})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	t.Cleanup(func() {
		_ = sDB.Close(ctx)
	})
	return New(sDB)
}

func TestStoreFindAll(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	reports := []model.Report{
		model.NewReport("iris.csv", 5, 5, "EUCLIDEAN", true, []float64{90, 95, 100, 85, 95}, 93),
		model.NewReport("iris.csv", 3, 5, "MANHATTAN", false, []float64{80, 85, 90, 75, 85}, 83),
	}
	for _, r := range reports {
		if err := db.Store(ctx, r); err != nil {
			t.Fatalf("the error should not be returned: %v", err)
		}
	}

	got, err := db.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if len(got) != len(reports) {
		t.Fatalf("report count got: %v, expected: %v", len(got), len(reports))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("reports must be ordered newest first")
		}
	}
}

func TestFindAllFilter(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.Store(ctx, model.NewReport("iris.csv", 5, 5, "EUCLIDEAN", true, []float64{100}, 100)); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if err := db.Store(ctx, model.NewReport("wine.csv", 5, 5, "EUCLIDEAN", true, []float64{50}, 50)); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}

	got, err := db.FindAll(ctx, func(r model.Report) bool {
		return r.Dataset == "iris.csv"
	})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("filtered report count got: %v, expected: 1", len(got))
	}
	if got[0].Dataset != "iris.csv" {
		t.Errorf("filtered dataset got: %v, expected: iris.csv", got[0].Dataset)
	}
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	report := model.NewReport("iris.csv", 5, 5, "EUCLIDEAN", true, []float64{100}, 100)
	if err := db.Store(ctx, report); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if err := db.Delete(ctx, report); err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	got, err := db.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("report count after delete got: %v, expected: 0", len(got))
	}
}
