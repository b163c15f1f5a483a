package live

import (
	"edleval/internal/runner"
	"edleval/internal/score"
)

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventDocument delivers a document status update.
	EventDocument
	// EventPhase signals a corpus-wide phase.
	EventPhase
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	Language  string
	Documents int
	Document  runner.DocumentEvent
	Phase     runner.Phase
	Report    score.Report
}
