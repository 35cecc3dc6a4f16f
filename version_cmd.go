package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func versionString() string {
	v := appName + " " + Version
	if len(CommitSHA) >= 7 {
		v += " (" + CommitSHA[0:7] + ")"
	}
	return v
}
