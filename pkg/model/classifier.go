package model

import (
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// LabelScore is the unnormalised posterior of one label for one row.
type LabelScore struct {
	Label string  `json:"label" msgpack:"label"`
	Score float64 `json:"score" msgpack:"score"`
}

// Prediction is the outcome of scoring a row against every label.
type Prediction struct {
	Label  string
	Score  float64
	Scores []LabelScore // every label, in scoring order
}

// Score computes prior(label) * Π P(row.Features[i] | label). Values with no
// table entry contribute 1.
func Score(t *ProbabilityTable, row data.Row, label string) (float64, error) {
	if len(row.Features) != t.numFeatures {
		return 0, &pipeline.MalformedRowError{ID: row.ID, Position: -1, Got: len(row.Features), Want: t.numFeatures}
	}
	prior, ok := t.prior[label]
	if !ok {
		return 0, &UnknownLabelError{Label: label}
	}
	return scoreRow(t, row, label, prior), nil
}

func scoreRow(t *ProbabilityTable, row data.Row, label string, prior float64) float64 {
	p := prior
	for i, v := range row.Features {
		p *= t.Conditional(JointKey{Label: label, Feature: i, Value: v})
	}
	return p
}

// Predict scores row against every label in schema order. The first label with
// the strictly greatest score wins; if no label scores above zero the result
// is a *NoConfidentPredictionError.
func Predict(t *ProbabilityTable, schema *pipeline.Schema, row data.Row) (Prediction, error) {
	if err := schema.CheckRow(row, -1); err != nil {
		return Prediction{}, err
	}
	labels := schema.Labels()
	scores := make([]LabelScore, 0, len(labels))
	best, bestLabel, found := 0.0, "", false
	for _, label := range labels {
		s, err := Score(t, row, label)
		if err != nil {
			return Prediction{}, err
		}
		scores = append(scores, LabelScore{Label: label, Score: s})
		if s > best {
			best, bestLabel, found = s, label, true
		}
	}
	if !found {
		return Prediction{}, &NoConfidentPredictionError{ID: row.ID, Scores: scores}
	}
	return Prediction{Label: bestLabel, Score: best, Scores: scores}, nil
}
