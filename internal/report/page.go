package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"edleval/internal/runner"
)

// ReportPage lists runs side by side with their three-tier F1 scores.
func ReportPage(runs []runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>EDL Evaluation Runs</title></head><body>\n")
		b.WriteString("<h1>EDL Evaluation Runs</h1>\n")
		if len(runs) == 0 {
			b.WriteString("<p>No runs recorded.</p>\n")
		} else {
			b.WriteString("<table class=\"runs\"><thead><tr><th>Run</th><th>Language</th><th>Documents</th><th>Predicted</th><th>Gold</th><th>Span F1</th><th>Type F1</th><th>Link F1</th></tr></thead><tbody>\n")
			for _, run := range runs {
				fmt.Fprintf(&b, "<tr><td><a href=\"/api/runs/%s/%s\">%s</a></td><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
					templ.EscapeString(run.Language), templ.EscapeString(run.RunID), templ.EscapeString(run.RunID),
					templ.EscapeString(run.Language), run.Summary.Documents, run.Counts.Predicted, run.Counts.Gold,
					formatScore(run.Report.Span.F1), formatScore(run.Report.SpanType.F1), formatScore(run.Report.SpanTypeLink.F1))
			}
			b.WriteString("</tbody></table>\n")
		}
		b.WriteString("</body></html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
