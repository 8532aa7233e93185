package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/config"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/dataprep"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/model"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/pipeline"
)

// trained bundles a fitted classifier with the preprocessing fitted alongside it.
type trained struct {
	nb   *model.NaiveBayes
	prep *pipeline.Pipeline
}

func newPreprocessing(cfg config.Config) *pipeline.Pipeline {
	if !cfg.Data.Impute {
		return pipeline.NewPipeline()
	}
	imp := dataprep.NewModeImputer()
	imp.Missing = cfg.Data.Missing
	return pipeline.NewPipeline(imp)
}

// train loads the training file, fits preprocessing on it and fits the model.
// vocabulary rows, if any, are preprocessed and then extend the schema.
func train(ctx context.Context, cfg config.Config, logger *zap.Logger, vocabulary []data.Row) (*trained, error) {
	if cfg.Data.Train == "" {
		return nil, errors.New("no training file: set --train or [data].train")
	}
	ds, err := data.LoadCSV(cfg.Data.Train)
	if err != nil {
		return nil, err
	}
	logger.Info("training data loaded",
		zap.String("path", cfg.Data.Train),
		zap.Int("rows", ds.Len()),
		zap.Strings("features", ds.FeatureNames))

	smoothing, err := model.ParseSmoothing(cfg.Model.Smoothing)
	if err != nil {
		return nil, err
	}

	prep := newPreprocessing(cfg)
	rows := prep.Fit(ds.Rows)

	opts := []model.Option{
		model.WithSmoothing(smoothing),
		model.WithWorkers(cfg.Model.Workers),
		model.WithLogger(logger),
	}
	if len(vocabulary) > 0 {
		opts = append(opts, model.WithVocabulary(prep.Transform(vocabulary)))
	}
	nb := model.NewNaiveBayes(opts...)
	if err := nb.Fit(ctx, &data.Dataset{FeatureNames: ds.FeatureNames, Rows: rows}); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Data.Train, err)
	}
	return &trained{nb: nb, prep: prep}, nil
}
