package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"edleval/internal/runner"
)

// formatIndex formats a document position, 1-based.
func formatIndex(index int) string {
	return fmtInt(index + 1)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatDocID truncates long document ids for display.
func formatDocID(id string) string {
	const limit = 60
	if len(id) <= limit {
		return id
	}
	return id[:limit-3] + "..."
}

// formatStatus renders a status string for a row.
func formatStatus(row DocumentRow, noColor bool) string {
	return stylizeStatus(statusLabel(row), row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(row DocumentRow) string {
	switch row.Status {
	case runner.DocumentQueued:
		return "queued"
	case runner.DocumentStage:
		return row.Stage
	case runner.DocumentDone:
		return "done"
	case runner.DocumentFailed:
		return "failed: " + row.Stage
	default:
		return string(row.Status)
	}
}

// formatMentions renders the mention count once a document has started.
func formatMentions(row DocumentRow) string {
	if row.Status == runner.DocumentQueued {
		return ""
	}
	return fmtInt(row.Mentions)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row DocumentRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return formatDuration(row.FinishedAt.Sub(row.StartedAt))
	}
	if !row.StartedAt.IsZero() {
		return formatDuration(now.Sub(row.StartedAt))
	}
	return ""
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(time.Millisecond).String()
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.DocumentEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.DocumentEventType) lipgloss.Style {
	color := lipgloss.Color("246")
	switch status {
	case runner.DocumentDone:
		color = lipgloss.Color("42")
	case runner.DocumentFailed:
		color = lipgloss.Color("196")
	case runner.DocumentStage:
		color = lipgloss.Color("33")
	}
	return lipgloss.NewStyle().Foreground(color)
}
