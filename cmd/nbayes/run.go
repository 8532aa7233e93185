package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Train on a labelled file and evaluate on a held-out labelled file",
	Args:  cobra.NoArgs,
	RunE:  runExecution,
}

func init() {
	runCmd.Flags().String("train", "", "training CSV (id,label,features...)")
	runCmd.Flags().String("test", "", "labelled test CSV")
	runCmd.Flags().String("smoothing", "laplace", "smoothing policy (laplace|mle)")
	runCmd.Flags().Int("workers", 0, "parallel counting workers (0 = sequential, -1 = GOMAXPROCS)")
	runCmd.Flags().Bool("extend-vocab", false, "add test-set feature values to the schema before estimation")
	runCmd.Flags().Bool("impute", false, "replace missing values with the training column mode")
	runCmd.Flags().String("report", "", "write the evaluation to a .json or .msgpack file")
	runCmd.Flags().String("plot", "", "save a per-class precision/recall chart (png, svg, pdf)")
	runCmd.Flags().Bool("quiet", false, "print only the summary, not every instance")
}

func runExecution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	colorize, err := colorEnabled(cmd)
	if err != nil {
		return err
	}

	if cfg.Data.Test == "" {
		return errors.New("no test file: set --test or [data].test")
	}
	test, err := data.LoadCSV(cfg.Data.Test)
	if err != nil {
		return err
	}

	var vocabulary []data.Row
	if cfg.Model.ExtendVocabulary {
		vocabulary = test.Rows
	}
	tr, err := train(cmd.Context(), cfg, logger, vocabulary)
	if err != nil {
		return err
	}

	ev, err := tr.nb.Evaluate(tr.prep.Transform(test.Rows))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Data.Test, err)
	}

	report.NewPrinter(cmd.OutOrStdout(), colorize).Evaluation(ev, cfg.Report.Instances)

	if cfg.Report.Output != "" {
		if err := report.WriteFile(cfg.Report.Output, report.NewSummary(ev, tr.nb.Table().Smoothing())); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.Report.Output))
	}
	if cfg.Report.Plot != "" {
		if err := report.PlotClassMetrics(ev.Confusion().PerClass(), ev.Accuracy, cfg.Report.Plot); err != nil {
			return err
		}
		logger.Info("plot written", zap.String("path", cfg.Report.Plot))
	}
	return nil
}
