package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/data"
	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/loader"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split one labelled CSV into training and test files",
	Args:  cobra.NoArgs,
	RunE:  splitExecution,
}

func init() {
	splitCmd.Flags().String("input", "", "labelled CSV to split")
	splitCmd.Flags().String("train-out", "train.csv", "where to write the training rows")
	splitCmd.Flags().String("test-out", "test.csv", "where to write the test rows")
	splitCmd.Flags().Float64("ratio", 0.3, "fraction of rows that go to the test file")
	splitCmd.Flags().Int64("seed", 1, "shuffle seed")
}

func splitExecution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return errors.New("no input file: set --input")
	}
	trainOut, _ := cmd.Flags().GetString("train-out")
	testOut, _ := cmd.Flags().GetString("test-out")

	ds, err := data.LoadCSV(input)
	if err != nil {
		return err
	}
	trainSet, testSet, err := loader.SplitDataset(ds, cfg.Split.Ratio, cfg.Split.Seed)
	if err != nil {
		return err
	}
	if err := data.SaveCSV(trainOut, trainSet); err != nil {
		return err
	}
	if err := data.SaveCSV(testOut, testSet); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d training rows to %s and %d test rows to %s\n",
		trainSet.Len(), trainOut, testSet.Len(), testOut)
	return nil
}
