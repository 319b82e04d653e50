package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"citrine/internal/diag"
	"citrine/internal/diagfmt"
	"citrine/internal/driver"
	"citrine/internal/project"
	"citrine/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path]",
	Short: "Check citrine source files for syntax errors",
	Long: `Check parses a file, or every citrine file under a directory, and
reports diagnostics. Directory checks run in parallel and reuse cached
verdicts for unchanged files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = all CPUs)")
	checkCmd.Flags().Bool("ui", false, "show interactive progress")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return checkFile(cmd, target)
	}
	return checkDir(cmd, target)
}

func checkFile(cmd *cobra.Command, path string) error {
	result, err := driver.Parse(path, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	return reportBag(cmd, result, path)
}

func reportBag(cmd *cobra.Command, result *driver.ParseResult, path string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	format, _ := cmd.Flags().GetString("format")
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		result.Bag.Dedup()
		if format == "json" {
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
			}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color: useColor(cmd, os.Stderr),
			})
		}
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: check failed", path)
	}
	if !quiet && format != "json" {
		fmt.Fprintf(os.Stdout, "%s: ok\n", path)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	showUI, _ := cmd.Flags().GetBool("ui")
	format, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cfg, err := project.LoadConfig(project.FindRoot(dir))
	if err != nil {
		return fmt.Errorf("loading %s: %w", project.ManifestName, err)
	}
	if jobs == 0 {
		jobs = cfg.Check.Jobs
	}

	var cache *driver.DiskCache
	if cfg.Check.Cache && !noCache {
		// Cache open failure is not fatal, checks just run uncached.
		cache, _ = driver.OpenDiskCache("citrine")
	}

	opts := driver.ParseDirOptions{
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
		Cache:          cache,
	}

	var (
		events  chan driver.Event
		uiDone  chan error
		program *tea.Program
	)
	if showUI && isTerminal(os.Stdout) {
		files, err := driver.ListSourceFiles(dir)
		if err != nil {
			return err
		}
		events = make(chan driver.Event, len(files)*2)
		opts.Progress = func(ev driver.Event) { events <- ev }
		program = tea.NewProgram(ui.NewProgressModel("checking "+dir, files, events))
		uiDone = make(chan error, 1)
		go func() {
			_, err := program.Run()
			uiDone <- err
		}()
	}

	fileSet, results, err := driver.ParseDir(context.Background(), dir, opts)

	if program != nil {
		close(events)
		<-uiDone
	}
	if err != nil {
		return err
	}

	// Per-file bags are merged so the run reports one aggregate: a single
	// JSON document in json mode, a diagnostics total in the summary.
	all := diag.NewBag(0)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed++
			continue
		}
		if r.Bag.Len() > 0 {
			r.Bag.Sort()
			all.Merge(r.Bag)
			if format != "json" {
				diagfmt.Pretty(os.Stderr, r.Bag, fileSet, diagfmt.PrettyOpts{
					Color:    useColor(cmd, os.Stderr),
					PathMode: diagfmt.PathModeRelative,
				})
			}
		}
		if r.Bag.HasErrors() {
			failed++
		}
	}

	if format == "json" && all.Len() > 0 {
		if err := diagfmt.JSON(os.Stdout, all, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
		}); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	if !quiet && format != "json" {
		if n := all.Len(); n > 0 {
			fmt.Fprintf(os.Stdout, "checked %d files: %d diagnostics\n", len(results), n)
		} else {
			fmt.Fprintf(os.Stdout, "checked %d files: ok\n", len(results))
		}
	}
	return nil
}
