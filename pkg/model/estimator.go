package model

import (
	"fmt"
	"strings"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// Smoothing selects how counts become probabilities. One policy applies to
// both the priors and the conditionals of a table.
type Smoothing int

const (
	// Laplace adds one to every (class, feature, value) count and to every
	// class count: prior = (c+1)/(N+K), conditional = (j+1)/(c+|V|).
	Laplace Smoothing = iota
	// MaximumLikelihood uses raw frequencies: prior = c/N, conditional = j/c.
	MaximumLikelihood
)

func (s Smoothing) String() string {
	switch s {
	case Laplace:
		return "laplace"
	case MaximumLikelihood:
		return "mle"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing accepts "laplace" and "mle" (or "none").
func ParseSmoothing(s string) (Smoothing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "laplace", "add-one":
		return Laplace, nil
	case "mle", "none":
		return MaximumLikelihood, nil
	}
	return 0, fmt.Errorf("model: unknown smoothing %q (want laplace or mle)", s)
}

// ProbabilityTable holds class priors and per-class conditional probabilities.
// It is never modified after Estimate returns.
type ProbabilityTable struct {
	smoothing   Smoothing
	labels      []string
	numFeatures int
	prior       map[string]float64
	conditional map[JointKey]float64
}

// Estimate turns counts into probabilities for every label and every value the
// schema knows about. The conditional denominator is always the class count.
func Estimate(m *FrequencyModel, schema *pipeline.Schema, s Smoothing) (*ProbabilityTable, error) {
	if m.Total() == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if s != Laplace && s != MaximumLikelihood {
		return nil, fmt.Errorf("model: unsupported smoothing %v", s)
	}

	labels := schema.Labels()
	t := &ProbabilityTable{
		smoothing:   s,
		labels:      labels,
		numFeatures: schema.NumFeatures(),
		prior:       make(map[string]float64, len(labels)),
		conditional: map[JointKey]float64{},
	}

	var pseudo float64
	if s == Laplace {
		pseudo = 1
	}
	n := float64(m.Total())
	k := float64(len(labels))

	for _, label := range labels {
		c := float64(m.ClassCount(label))
		t.prior[label] = (c + pseudo) / (n + pseudo*k)

		for i := 0; i < schema.NumFeatures(); i++ {
			feature := schema.Feature(i)
			denom := c + pseudo*float64(feature.Len())
			for _, v := range feature.Values() {
				key := JointKey{Label: label, Feature: i, Value: v}
				j := float64(m.JointCount(key))
				var p float64
				if denom > 0 {
					p = (j + pseudo) / denom
				}
				t.conditional[key] = p
			}
		}
	}
	return t, nil
}

// Smoothing reports the policy the table was estimated with.
func (t *ProbabilityTable) Smoothing() Smoothing { return t.smoothing }

// Labels returns the class labels in scoring order.
func (t *ProbabilityTable) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// NumFeatures is the row width the table was estimated for.
func (t *ProbabilityTable) NumFeatures() int { return t.numFeatures }

// Prior returns the prior of label; ok is false for labels not seen in training.
func (t *ProbabilityTable) Prior(label string) (p float64, ok bool) {
	p, ok = t.prior[label]
	return p, ok
}

// Lookup returns the stored conditional for key, if any.
func (t *ProbabilityTable) Lookup(key JointKey) (float64, bool) {
	p, ok := t.conditional[key]
	return p, ok
}

// Conditional returns P(value | label) for key. A value that was never observed
// for the feature has no entry and contributes a neutral factor of 1.
func (t *ProbabilityTable) Conditional(key JointKey) float64 {
	if p, ok := t.conditional[key]; ok {
		return p
	}
	return 1.0
}

// Entry is one conditional probability, used for reporting.
type Entry struct {
	JointKey
	Probability float64
}

// Entries lists conditionals ordered by label (scoring order), feature index,
// then schema value order.
func (t *ProbabilityTable) Entries(schema *pipeline.Schema) []Entry {
	out := make([]Entry, 0, len(t.conditional))
	for _, label := range t.labels {
		for i := 0; i < schema.NumFeatures(); i++ {
			for _, v := range schema.Feature(i).Values() {
				key := JointKey{Label: label, Feature: i, Value: v}
				if p, ok := t.conditional[key]; ok {
					out = append(out, Entry{JointKey: key, Probability: p})
				}
			}
		}
	}
	return out
}
