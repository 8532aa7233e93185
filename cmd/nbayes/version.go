package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Overridable at build time via -ldflags.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the nbayes version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colorize, err := colorEnabled(cmd)
		if err != nil {
			return err
		}
		c := color.New(color.FgYellow, color.Bold)
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "nbayes %s\n", c.Sprint(version))
		if gitCommit != "" {
			fmt.Fprintf(out, "commit %s\n", gitCommit)
		}
		return nil
	},
}
