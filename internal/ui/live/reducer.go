package live

import (
	"fmt"

	"edleval/internal/runner"
)

// StartRun resets the state for a run over documents documents.
func StartRun(state State, runID, language string, documents int) State {
	state.RunID = runID
	state.Language = language
	state.Documents = documents
	state.Rows = make([]DocumentRow, documents)
	for i := range state.Rows {
		state.Rows[i] = DocumentRow{Index: i, Status: runner.DocumentQueued}
	}
	state.Recent = nil
	state.Counts = recount(state.Rows)
	state.LastEvent = ""
	return state
}

// Reduce applies a document event to the UI state.
func Reduce(state State, event runner.DocumentEvent) State {
	state = ensureRow(state, event)
	state = applyDocumentEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.DocumentEvent) State {
	if event.Index < 0 || event.Index < len(state.Rows) {
		return state
	}
	rows := make([]DocumentRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = DocumentRow{Index: i, Status: runner.DocumentQueued}
	}
	state.Rows = rows
	return state
}

// applyDocumentEvent updates a row with the given event.
func applyDocumentEvent(state State, event runner.DocumentEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.DocID == "" {
		row.DocID = event.DocID
	}
	switch event.Type {
	case runner.DocumentQueued:
		row.Status = runner.DocumentQueued
	case runner.DocumentStage:
		row.Status = runner.DocumentStage
		row.Stage = event.Stage
		row.Mentions = event.Mentions
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	case runner.DocumentDone, runner.DocumentFailed:
		row.Status = event.Type
		row.Mentions = event.Mentions
		row.FinishedAt = event.EmittedAt
		row.Error = event.Error
		if event.Stage != "" {
			row.Stage = event.Stage
		}
		state.Recent = pushRecent(state.Recent, event.Index)
	}
	state.Rows[event.Index] = row
	return state
}

// pushRecent appends index and keeps the newest recentLimit entries.
func pushRecent(recent []int, index int) []int {
	out := append(append([]int(nil), recent...), index)
	if len(out) > recentLimit {
		out = out[len(out)-recentLimit:]
	}
	return out
}

// recount recomputes status counts for the current rows.
func recount(rows []DocumentRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.DocumentQueued:
			counts.Queued++
		case runner.DocumentStage:
			counts.Running++
		case runner.DocumentDone:
			counts.Done++
		case runner.DocumentFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.DocumentEvent) string {
	switch event.Type {
	case runner.DocumentDone:
		return fmt.Sprintf("%s done (%d mentions)", event.DocID, event.Mentions)
	case runner.DocumentFailed:
		return fmt.Sprintf("%s failed at %s: %s", event.DocID, event.Stage, event.Error)
	}
	return ""
}
