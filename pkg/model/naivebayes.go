package model

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// NaiveBayes chains schema building, counting and estimation behind a single
// Fit call. Fit replaces any previous state; the fitted parts are read-only.
type NaiveBayes struct {
	Smoothing  Smoothing
	Workers    int        // 0 or 1 counts sequentially, >1 counts in parallel, <0 uses GOMAXPROCS
	Vocabulary []data.Row // extra rows whose feature values extend the schema

	logger *zap.Logger
	schema *pipeline.Schema
	freq   *FrequencyModel
	table  *ProbabilityTable
}

// Option functional config
type Option func(*NaiveBayes)

func WithSmoothing(s Smoothing) Option { return func(nb *NaiveBayes) { nb.Smoothing = s } }
func WithWorkers(n int) Option         { return func(nb *NaiveBayes) { nb.Workers = n } }
func WithVocabulary(rows []data.Row) Option {
	return func(nb *NaiveBayes) { nb.Vocabulary = rows }
}
func WithLogger(l *zap.Logger) Option { return func(nb *NaiveBayes) { nb.logger = l } }

// NewNaiveBayes returns a Laplace-smoothed classifier that counts sequentially.
func NewNaiveBayes(opts ...Option) *NaiveBayes {
	nb := &NaiveBayes{Smoothing: Laplace, logger: zap.NewNop()}
	for _, o := range opts {
		o(nb)
	}
	if nb.logger == nil {
		nb.logger = zap.NewNop()
	}
	return nb
}

// Fit builds the schema, counts frequencies and estimates the probability table.
// On error the previous fitted state is left untouched.
func (nb *NaiveBayes) Fit(ctx context.Context, ds *data.Dataset) error {
	var opts []pipeline.SchemaOption
	if len(nb.Vocabulary) > 0 {
		opts = append(opts, pipeline.WithVocabulary(nb.Vocabulary))
	}
	schema, err := pipeline.BuildSchema(ds.Rows, ds.FeatureNames, opts...)
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}
	nb.logger.Debug("schema built",
		zap.Int("rows", len(ds.Rows)),
		zap.Int("features", schema.NumFeatures()),
		zap.Strings("labels", schema.Labels()))

	var freq *FrequencyModel
	if nb.Workers == 0 || nb.Workers == 1 {
		freq, err = CountFrequencies(ds.Rows, schema)
	} else {
		freq, err = CountFrequenciesParallel(ctx, ds.Rows, schema, nb.Workers)
	}
	if err != nil {
		return fmt.Errorf("counting frequencies: %w", err)
	}

	table, err := Estimate(freq, schema, nb.Smoothing)
	if err != nil {
		return fmt.Errorf("estimating probabilities: %w", err)
	}
	for _, label := range schema.Labels() {
		prior, _ := table.Prior(label)
		nb.logger.Debug("class estimated",
			zap.String("label", label),
			zap.Int("count", freq.ClassCount(label)),
			zap.Float64("prior", prior))
	}

	nb.schema, nb.freq, nb.table = schema, freq, table
	return nil
}

// Schema returns the fitted schema, or nil before Fit.
func (nb *NaiveBayes) Schema() *pipeline.Schema { return nb.schema }

// Frequencies returns the fitted counts, or nil before Fit.
func (nb *NaiveBayes) Frequencies() *FrequencyModel { return nb.freq }

// Table returns the fitted probability table, or nil before Fit.
func (nb *NaiveBayes) Table() *ProbabilityTable { return nb.table }

func (nb *NaiveBayes) Predict(row data.Row) (Prediction, error) {
	if nb.table == nil {
		return Prediction{}, ErrNotFitted
	}
	return Predict(nb.table, nb.schema, row)
}

func (nb *NaiveBayes) Evaluate(rows []data.Row) (*Evaluation, error) {
	if nb.table == nil {
		return nil, ErrNotFitted
	}
	ev, err := Evaluate(nb.table, nb.schema, rows)
	if err != nil {
		return nil, err
	}
	nb.logger.Debug("evaluation finished",
		zap.Int("rows", ev.Total),
		zap.Int("correct", ev.Correct),
		zap.Float64("accuracy", ev.Accuracy))
	return ev, nil
}
