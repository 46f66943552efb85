package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var envFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "workdna",
	Short: "WorkDNA behavioral assessment service",
	Long: `WorkDNA scores timed multiple-choice assessments into five workplace traits
(task approach, social leadership, emotional regulation, behavioral patterns,
building skills) and a weighted overall result.

Run "workdna serve" for the HTTP service or "workdna score" to score a set of
answers offline against a question catalog.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file before reading config")
}
