package cli

import (
	"context"
	"fmt"
	"io"

	"edleval/internal/duckdb"
	"edleval/internal/runner"
	"edleval/internal/score"
)

// printScores writes the span and span+type metrics. The link tier is kept in
// results.json and the report only.
func printScores(w io.Writer, results runner.Results) {
	printReport(w, results.Report)
}

func printReport(w io.Writer, report score.Report) {
	fmt.Fprintf(w, "Mention Span: %s\n", report.Span)
	fmt.Fprintf(w, "Mention Span + Entity Type: %s\n", report.SpanType)
}

// ingestRun is a test seam for recording a run in DuckDB.
var ingestRun = func(ctx context.Context, path string, results runner.Results) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return duckdb.IngestRun(ctx, db, results)
}
