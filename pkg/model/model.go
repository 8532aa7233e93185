package model

import (
	"context"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
)

// Classifier is a supervised model over categorical rows.
type Classifier interface {
	Fit(ctx context.Context, ds *data.Dataset) error
	Predict(row data.Row) (Prediction, error)
	Evaluate(rows []data.Row) (*Evaluation, error)
}

var _ Classifier = (*NaiveBayes)(nil)
