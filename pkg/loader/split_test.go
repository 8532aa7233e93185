package loader

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
)

func numbered(n int) []data.Row {
	rows := make([]data.Row, n)
	for i := range rows {
		rows[i] = data.Row{ID: fmt.Sprint(i), Label: "a", Features: []string{"x"}}
	}
	return rows
}

func TestTrainTestSplit(t *testing.T) {
	rows := numbered(20)
	train, test, err := TrainTestSplit(rows, 0.25, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(test) != 5 || len(train) != 15 {
		t.Fatalf("sizes = %d/%d, want 15/5", len(train), len(test))
	}
	var ids []string
	for _, r := range append(append([]data.Row(nil), train...), test...) {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("row %s appears twice", id)
		}
		seen[id] = true
	}
	if len(seen) != 20 {
		t.Fatalf("split lost rows: %d", len(seen))
	}

	train2, test2, err := TrainTestSplit(rows, 0.25, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(train, train2) || !reflect.DeepEqual(test, test2) {
		t.Fatal("same seed produced a different split")
	}
}

func TestTrainTestSplitSmall(t *testing.T) {
	train, test, err := TrainTestSplit(numbered(3), 0.1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(test) != 1 || len(train) != 2 {
		t.Fatalf("sizes = %d/%d, want 2/1", len(train), len(test))
	}
}

func TestTrainTestSplitRatio(t *testing.T) {
	for _, r := range []float64{0, 1, -0.5, 2} {
		if _, _, err := TrainTestSplit(numbered(4), r, 1); err == nil {
			t.Errorf("ratio %v accepted", r)
		}
	}
}

func TestSplitDataset(t *testing.T) {
	ds := &data.Dataset{FeatureNames: []string{"f"}, Rows: numbered(10)}
	train, test, err := SplitDataset(ds, 0.3, 7)
	if err != nil {
		t.Fatal(err)
	}
	if train.Len()+test.Len() != 10 || test.Len() != 3 {
		t.Fatalf("sizes = %d/%d", train.Len(), test.Len())
	}
	if train.FeatureNames[0] != "f" || test.FeatureNames[0] != "f" {
		t.Fatal("feature names not carried over")
	}
}
