package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deferio",
	Short: "deferio runs console dialogues described as deferred actions",
	Long: `deferio builds console programs as values: reads, writes and continuations
composed up front and performed by a single evaluator.

Programs come from the built-in catalog or from YAML scripts.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional .env file with DEFERIO_* settings")
}
