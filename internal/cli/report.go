package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"edleval/internal/report"
)

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("dir", "", "Output directory containing runs")
		outputPath := fs.String("output", "", "Report output path (default: <dir>/index.html)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *inputDir == "" {
			fmt.Fprintln(stderr, "Missing --dir")
			return ExitUsage
		}

		runs, err := report.LoadRuns(*inputDir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load runs: %v\n", err)
			return ExitError
		}
		if len(runs) == 0 {
			fmt.Fprintf(stderr, "No runs found in %s\n", *inputDir)
			return ExitError
		}

		reportPath := *outputPath
		if reportPath == "" {
			reportPath = filepath.Join(*inputDir, "index.html")
		}
		if err := report.WriteIndexFile(context.Background(), reportPath, runs); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report for %d runs written to %s\n", len(runs), reportPath)
		return ExitOK
	}
}
