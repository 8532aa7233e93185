package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/report"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Train on a labelled file and predict every row of another file",
	Long: `predict streams the input file row by row, so it can score files larger than memory.
The label column of the input is read but ignored.`,
	Args: cobra.NoArgs,
	RunE: predictExecution,
}

func init() {
	predictCmd.Flags().String("train", "", "training CSV (id,label,features...)")
	predictCmd.Flags().String("input", "", "CSV to score, same layout as the training file")
	predictCmd.Flags().String("smoothing", "laplace", "smoothing policy (laplace|mle)")
	predictCmd.Flags().Int("workers", 0, "parallel counting workers (0 = sequential, -1 = GOMAXPROCS)")
	predictCmd.Flags().Bool("impute", false, "replace missing values with the training column mode")
}

func predictExecution(cmd *cobra.Command, args []string) error {
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
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return errors.New("no input file: set --input")
	}

	tr, err := train(cmd.Context(), cfg, logger, nil)
	if err != nil {
		return err
	}

	records := make(chan data.Record)
	names, done, err := data.StreamCSV(input, records)
	if err != nil {
		return err
	}
	defer close(done)
	if len(names) != tr.nb.Schema().NumFeatures() {
		return fmt.Errorf("%s: %d feature column(s), training data has %d", input, len(names), tr.nb.Schema().NumFeatures())
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), colorize)
	n := 0
	for rec := range records {
		if rec.Err != nil {
			return rec.Err
		}
		row := tr.prep.Transform([]data.Row{rec.Row})[0]
		pred, err := tr.nb.Predict(row)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		printer.Prediction(row.ID, pred)
		n++
	}
	logger.Info("predictions written", zap.Int("rows", n))
	return nil
}
