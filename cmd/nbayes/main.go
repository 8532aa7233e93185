package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Rohan-Gajadhar/Reasoning-under-Uncertainty/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:           "nbayes",
	Short:         "Categorical Naive Bayes trainer and evaluator",
	Long:          `nbayes trains a categorical Naive Bayes classifier on a labelled CSV file and scores held-out or unlabelled rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(probsCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to "+config.FileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log pipeline progress to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// loadConfig reads the config file and applies any flags the user set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if f := flags.Lookup("train"); f != nil && f.Changed {
		cfg.Data.Train = f.Value.String()
	}
	if f := flags.Lookup("test"); f != nil && f.Changed {
		cfg.Data.Test = f.Value.String()
	}
	if f := flags.Lookup("impute"); f != nil && f.Changed {
		cfg.Data.Impute, _ = flags.GetBool("impute")
	}
	if f := flags.Lookup("smoothing"); f != nil && f.Changed {
		cfg.Model.Smoothing = f.Value.String()
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Model.Workers, _ = flags.GetInt("workers")
	}
	if f := flags.Lookup("extend-vocab"); f != nil && f.Changed {
		cfg.Model.ExtendVocabulary, _ = flags.GetBool("extend-vocab")
	}
	if f := flags.Lookup("ratio"); f != nil && f.Changed {
		cfg.Split.Ratio, _ = flags.GetFloat64("ratio")
	}
	if f := flags.Lookup("seed"); f != nil && f.Changed {
		cfg.Split.Seed, _ = flags.GetInt64("seed")
	}
	if f := flags.Lookup("report"); f != nil && f.Changed {
		cfg.Report.Output = f.Value.String()
	}
	if f := flags.Lookup("plot"); f != nil && f.Changed {
		cfg.Report.Plot = f.Value.String()
	}
	if f := flags.Lookup("quiet"); f != nil && f.Changed {
		quiet, _ := flags.GetBool("quiet")
		cfg.Report.Instances = !quiet
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
