package model

import (
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// InstanceResult is the evaluation outcome for one test row.
type InstanceResult struct {
	ID        string       `json:"id" msgpack:"id"`
	Predicted string       `json:"predicted" msgpack:"predicted"`
	Actual    string       `json:"actual" msgpack:"actual"`
	Score     float64      `json:"score" msgpack:"score"`
	Scores    []LabelScore `json:"scores" msgpack:"scores"`
}

// Correct reports whether the prediction matched the known label.
func (r InstanceResult) Correct() bool { return r.Predicted == r.Actual }

// Evaluation is the result of running the classifier over a labelled test set.
type Evaluation struct {
	Accuracy  float64          `json:"accuracy" msgpack:"accuracy"`
	Correct   int              `json:"correct" msgpack:"correct"`
	Total     int              `json:"total" msgpack:"total"`
	Labels    []string         `json:"labels" msgpack:"labels"`
	Instances []InstanceResult `json:"instances" msgpack:"instances"`
}

// Evaluate predicts every row and measures accuracy against the known labels.
// The first failing row aborts the evaluation.
func Evaluate(t *ProbabilityTable, schema *pipeline.Schema, rows []data.Row) (*Evaluation, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTestSet
	}
	ev := &Evaluation{
		Total:     len(rows),
		Labels:    schema.Labels(),
		Instances: make([]InstanceResult, 0, len(rows)),
	}
	actual := make([]string, len(rows))
	predicted := make([]string, len(rows))
	for i, row := range rows {
		if err := schema.CheckRow(row, i); err != nil {
			return nil, err
		}
		p, err := Predict(t, schema, row)
		if err != nil {
			return nil, err
		}
		actual[i], predicted[i] = row.Label, p.Label
		ev.Instances = append(ev.Instances, InstanceResult{
			ID:        row.ID,
			Predicted: p.Label,
			Actual:    row.Label,
			Score:     p.Score,
			Scores:    p.Scores,
		})
	}
	ev.Accuracy = Accuracy(actual, predicted)
	for _, r := range ev.Instances {
		if r.Correct() {
			ev.Correct++
		}
	}
	return ev, nil
}

// Accuracy is the fraction of positions where yTrue and yPred agree.
func Accuracy(yTrue, yPred []string) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ConfusionMatrix counts (actual, predicted) pairs. Rows and columns follow
// ev.Labels; actual labels outside that set are appended in first-seen order.
type ConfusionMatrix struct {
	Labels []string
	Counts [][]int // Counts[actual][predicted]
}

// Confusion builds the confusion matrix of an evaluation.
func (ev *Evaluation) Confusion() ConfusionMatrix {
	labels := append([]string(nil), ev.Labels...)
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	for _, r := range ev.Instances {
		if _, ok := index[r.Actual]; !ok {
			index[r.Actual] = len(labels)
			labels = append(labels, r.Actual)
		}
	}
	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	for _, r := range ev.Instances {
		counts[index[r.Actual]][index[r.Predicted]]++
	}
	return ConfusionMatrix{Labels: labels, Counts: counts}
}

// ClassMetrics are one-vs-rest precision, recall and F1 for a single label.
type ClassMetrics struct {
	Label     string  `json:"label" msgpack:"label"`
	Support   int     `json:"support" msgpack:"support"`
	Precision float64 `json:"precision" msgpack:"precision"`
	Recall    float64 `json:"recall" msgpack:"recall"`
	F1        float64 `json:"f1" msgpack:"f1"`
}

// PerClass returns ClassMetrics for each label of the confusion matrix.
func (cm ConfusionMatrix) PerClass() []ClassMetrics {
	out := make([]ClassMetrics, len(cm.Labels))
	for k, label := range cm.Labels {
		tp, fp, fn := cm.Counts[k][k], 0, 0
		for j := range cm.Labels {
			if j == k {
				continue
			}
			fp += cm.Counts[j][k]
			fn += cm.Counts[k][j]
		}
		prec, rec, f1 := precisionRecallF1(tp, fp, fn)
		out[k] = ClassMetrics{Label: label, Support: tp + fn, Precision: prec, Recall: rec, F1: f1}
	}
	return out
}

func precisionRecallF1(tp, fp, fn int) (prec, rec, f1 float64) {
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}
