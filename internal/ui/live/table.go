package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"edleval/internal/runner"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the columns for an 80-column terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(80)
}

// columnsForWidth gives the document column whatever the fixed columns leave.
func columnsForWidth(width int) []table.Column {
	const fixed = 5 + 18 + 9 + 9
	docWidth := max(width-fixed-8, 12)
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Document", Width: docWidth},
		{Title: "Status", Width: 18},
		{Title: "Mentions", Width: 9},
		{Title: "Time", Width: 9},
	}
}

// visibleRows lists running and failed documents, then the most recently
// finished ones.
func visibleRows(state State) []DocumentRow {
	out := make([]DocumentRow, 0)
	for _, row := range state.Rows {
		if row.Status == runner.DocumentStage || row.Status == runner.DocumentFailed {
			out = append(out, row)
		}
	}
	for i := len(state.Recent) - 1; i >= 0; i-- {
		index := state.Recent[i]
		if index < len(state.Rows) && state.Rows[index].Status == runner.DocumentDone {
			out = append(out, state.Rows[index])
		}
	}
	return out
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	visible := visibleRows(state)
	rows := make([]table.Row, 0, len(visible))
	for _, row := range visible {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			formatDocID(row.DocID),
			formatStatus(row, noColor),
			formatMentions(row),
			formatRowDuration(row, now),
		})
	}
	return rows
}
