package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"edleval/internal/score"
)

// RunReport is the report.html component for one run.
func RunReport(results Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>EDL Evaluation ")
		b.WriteString(templ.EscapeString(results.RunID))
		b.WriteString("</title></head><body>\n")
		fmt.Fprintf(&b, "<h1>EDL Evaluation</h1>\n<p>Run <code>%s</code> language <code>%s</code></p>\n",
			templ.EscapeString(results.RunID), templ.EscapeString(results.Language))
		fmt.Fprintf(&b, "<p>Started %s, finished %s</p>\n",
			formatTime(results.StartedAt), formatTime(results.FinishedAt))

		b.WriteString("<h2>Metrics</h2>\n<table class=\"metrics\"><thead><tr><th>Tier</th><th>Matched</th><th>Precision</th><th>Recall</th><th>F1</th></tr></thead><tbody>\n")
		writeMetricRow(&b, "Mention Span", results.Counts.Span, results.Report.Span)
		writeMetricRow(&b, "Mention Span + Entity Type", results.Counts.Type, results.Report.SpanType)
		writeMetricRow(&b, "Mention Span + Entity Type + Link", results.Counts.Link, results.Report.SpanTypeLink)
		b.WriteString("</tbody></table>\n")
		fmt.Fprintf(&b, "<p>Predicted %d, gold %d, documents %d, NIL clusters %d</p>\n",
			results.Counts.Predicted, results.Counts.Gold, results.Summary.Documents, results.Summary.NILClusters)

		if len(results.Duplicates) > 0 {
			b.WriteString("<h2>Duplicate gold spans</h2>\n<ul class=\"duplicates\">\n")
			for _, dup := range results.Duplicates {
				fmt.Fprintf(&b, "<li>%s [%d, %d) x%d</li>\n", templ.EscapeString(dup.DocID), dup.Start, dup.End, dup.Count)
			}
			b.WriteString("</ul>\n")
		}

		b.WriteString("<h2>Documents</h2>\n<table class=\"documents\"><thead><tr><th>Document</th><th>Predicted</th><th>Gold</th><th>Span</th><th>Type</th><th>Link</th></tr></thead><tbody>\n")
		for _, doc := range results.Documents {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>\n",
				templ.EscapeString(doc.DocID), doc.Counts.Predicted, doc.Counts.Gold, doc.Counts.Span, doc.Counts.Type, doc.Counts.Link)
		}
		b.WriteString("</tbody></table>\n</body></html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeMetricRow(b *strings.Builder, label string, matched int, metric score.Metric) {
	fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td><td>%.4f</td><td>%.4f</td><td>%.4f</td></tr>\n",
		templ.EscapeString(label), matched, metric.Precision, metric.Recall, metric.F1)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
