package cli

import (
	"flag"
	"fmt"
	"io"
	"math"

	"edleval/internal/report"
	"edleval/internal/score"
)

// resolveRun is a test seam for locating runs.
var resolveRun = report.ResolveRun

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("dir", "", "Output directory containing runs")
		baseRef := fs.String("base", "", "Base run id or language")
		headRef := fs.String("head", "", "Head run id or language")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *inputDir == "" || *baseRef == "" || *headRef == "" {
			fmt.Fprintln(stderr, "Missing --dir, --base or --head")
			return ExitUsage
		}

		base, _, err := resolveRun(*inputDir, *baseRef)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve base: %v\n", err)
			return ExitError
		}
		head, _, err := resolveRun(*inputDir, *headRef)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve head: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Base: %s (%s)\n", base.RunID, base.Language)
		fmt.Fprintf(stdout, "Head: %s (%s)\n", head.RunID, head.Language)
		printDelta(stdout, "Mention Span", base.Report.Span, head.Report.Span)
		printDelta(stdout, "Mention Span + Entity Type", base.Report.SpanType, head.Report.SpanType)
		printDelta(stdout, "Mention Span + Entity Type + Link", base.Report.SpanTypeLink, head.Report.SpanTypeLink)
		return ExitOK
	}
}

func printDelta(w io.Writer, label string, base, head score.Metric) {
	fmt.Fprintf(w, "%s: F1 %.4f -> %.4f (%s)\n", label, base.F1, head.F1, formatDelta(head.F1-base.F1))
}

func formatDelta(delta float64) string {
	if math.IsNaN(delta) {
		return "n/a"
	}
	return fmt.Sprintf("%+.4f", delta)
}
