package main

import (
	"github.com/spf13/cobra"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/report"
)

var probsCmd = &cobra.Command{
	Use:   "probs",
	Short: "Print the priors and conditional probabilities learned from a training file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		tr, err := train(cmd.Context(), cfg, logger, nil)
		if err != nil {
			return err
		}
		report.NewPrinter(cmd.OutOrStdout(), colorize).
			Probabilities(tr.nb.Table(), tr.nb.Frequencies(), tr.nb.Schema())
		return nil
	},
}

func init() {
	probsCmd.Flags().String("train", "", "training CSV (id,label,features...)")
	probsCmd.Flags().String("smoothing", "laplace", "smoothing policy (laplace|mle)")
	probsCmd.Flags().Bool("impute", false, "replace missing values with the training column mode")
}
