package loader

import (
	"fmt"
	"math/rand"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
)

// TrainTestSplit shuffles rows with a seeded source and splits them by ratio.
// The same seed always yields the same split. Both parts keep the relative
// order of the original rows.
func TrainTestSplit(rows []data.Row, testRatio float64, seed int64) (train, test []data.Row, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, fmt.Errorf("loader: test ratio must be in (0, 1), got %v", testRatio)
	}
	n := len(rows)
	nTest := int(float64(n) * testRatio)
	if n > 1 && nTest == 0 {
		nTest = 1
	}

	rng := rand.New(rand.NewSource(seed))
	isTest := make([]bool, n)
	for _, idx := range rng.Perm(n)[:nTest] {
		isTest[idx] = true
	}
	for i, r := range rows {
		if isTest[i] {
			test = append(test, r)
		} else {
			train = append(train, r)
		}
	}
	return train, test, nil
}

// SplitDataset applies TrainTestSplit to ds, sharing its feature names.
func SplitDataset(ds *data.Dataset, testRatio float64, seed int64) (train, test *data.Dataset, err error) {
	tr, te, err := TrainTestSplit(ds.Rows, testRatio, seed)
	if err != nil {
		return nil, nil, err
	}
	names := append([]string(nil), ds.FeatureNames...)
	return &data.Dataset{FeatureNames: names, Rows: tr}, &data.Dataset{FeatureNames: names, Rows: te}, nil
}
