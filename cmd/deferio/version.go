package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/deferio"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of deferio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deferio version %s\n", strings.TrimSpace(deferio.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
