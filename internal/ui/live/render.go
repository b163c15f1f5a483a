package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.Language != "" {
		line += " | Language: " + state.Language
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Documents: " + fmtInt(state.Documents) +
		" Queued: " + fmtInt(counts.Queued) +
		" Running: " + fmtInt(counts.Running) +
		" Done: " + fmtInt(counts.Done) +
		" Failed: " + fmtInt(counts.Failed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderPhase renders the corpus phase, or the scores once the run ended.
func renderPhase(state State, noColor bool) string {
	if state.Report != nil {
		line := "Span " + state.Report.Span.String() + " | Span+Type " + state.Report.SpanType.String()
		return stylize(line, noColor, lipgloss.Color("42"))
	}
	if state.Phase == "" {
		return ""
	}
	return stylize("Phase: "+string(state.Phase), noColor, lipgloss.Color("240"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
