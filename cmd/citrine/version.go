package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"citrine/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if useColor(cmd, os.Stdout) {
			fmt.Println(version.Banner())
		} else {
			fmt.Printf("citrine %s\n", version.Version)
		}
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("built:  %s\n", version.BuildDate)
		}
	},
}
