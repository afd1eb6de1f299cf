package main

import (
	"github.com/aretw0/deferio/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the programs in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(cmd.OutOrStdout())
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph <script>",
	Short: "Print a Mermaid flowchart of a script",
	Long:  `Draws the steps of a catalog script or a YAML file as a Mermaid flowchart.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.OutOrStdout(), args[0])
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <script>",
	Short: "Check a script for errors and suspicious steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(validateCmd)
}
