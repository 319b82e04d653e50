package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"citrine/internal/diagfmt"
	"citrine/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ctn",
	Short: "Parse a citrine source file",
	Long:  `Parse builds the lossless syntax tree for a citrine source file and dumps it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
