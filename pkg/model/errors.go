package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTestSet is returned by Evaluate when there are no rows to score.
	ErrEmptyTestSet = errors.New("model: empty test set")
	// ErrEmptyTrainingSet is returned when estimating from zero training rows.
	ErrEmptyTrainingSet = errors.New("model: empty training set")
	// ErrUnknownValue marks a training value missing from the schema it was counted against.
	ErrUnknownValue = errors.New("model: feature value not in schema")
	// ErrNotFitted is returned by NaiveBayes methods called before Fit.
	ErrNotFitted = errors.New("model: classifier not fitted")
)

// UnknownLabelError is an internal contract violation: a label outside the
// training label set reached counting or scoring.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("model: label %q not in training label set", e.Label)
}

// NoConfidentPredictionError is returned when no label scores above zero.
type NoConfidentPredictionError struct {
	ID     string
	Scores []LabelScore
}

func (e *NoConfidentPredictionError) Error() string {
	parts := make([]string, len(e.Scores))
	for i, s := range e.Scores {
		parts[i] = fmt.Sprintf("%s=%g", s.Label, s.Score)
	}
	return fmt.Sprintf("model: no label scores above zero for row %q (%s)", e.ID, strings.Join(parts, ", "))
}
