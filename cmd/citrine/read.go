package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"citrine/internal/diagfmt"
	"citrine/internal/driver"
)

var readCmd = &cobra.Command{
	Use:   "read [flags] file.ctn",
	Short: "Read a citrine source file into values",
	Long:  `Read parses a citrine source file and prints the data values it denotes, one per top-level form`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	result, err := driver.Read(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("reading failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	for _, v := range result.Values {
		fmt.Fprintln(os.Stdout, v.String())
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: input has errors", args[0])
	}
	return nil
}
