package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintf(os.Stdout, "lumen %s\n", version.Version)

	if show, _ := cmd.Flags().GetBool("hash"); show && version.GitCommit != "" {
		fmt.Fprintf(os.Stdout, "commit: %s\n", version.GitCommit)
	}
	if show, _ := cmd.Flags().GetBool("date"); show && version.BuildDate != "" {
		fmt.Fprintf(os.Stdout, "built:  %s\n", version.BuildDate)
	}
	return nil
}
