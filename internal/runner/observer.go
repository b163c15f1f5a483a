package runner

import "time"

// DocumentEventType identifies a document status update for observers.
type DocumentEventType string

const (
	// DocumentQueued marks a document loaded but not yet started.
	DocumentQueued DocumentEventType = "queued"
	// DocumentStage marks the start of a pipeline stage for a document.
	DocumentStage DocumentEventType = "stage"
	// DocumentDone marks a document that finished every stage.
	DocumentDone DocumentEventType = "done"
	// DocumentFailed marks a document whose stage returned an error.
	DocumentFailed DocumentEventType = "failed"
)

// DocumentEvent carries a single status update for a document.
type DocumentEvent struct {
	Index     int
	DocID     string
	Type      DocumentEventType
	Stage     string
	Mentions  int
	Error     string
	EmittedAt time.Time
}

// Phase names the corpus-wide steps that follow the per-document stages.
type Phase string

const (
	PhaseAnnotate   Phase = "annotate"
	PhaseClusterNIL Phase = "cluster_nil"
	PhaseWrite      Phase = "write"
	PhaseScore      Phase = "score"
)

// RunObserver receives run lifecycle events for UI or logging. Document
// events may arrive from several goroutines when workers > 1.
type RunObserver interface {
	// OnRunStart signals the start of a run over documents documents.
	OnRunStart(runID string, language string, documents int)
	// OnDocumentEvent delivers a document status update.
	OnDocumentEvent(event DocumentEvent)
	// OnPhase signals entry into a corpus-wide phase.
	OnPhase(phase Phase)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

// emitter stamps events and forwards them to an optional observer.
type emitter struct {
	observer RunObserver
	now      func() time.Time
}

func (e emitter) document(event DocumentEvent) {
	if e.observer == nil {
		return
	}
	event.EmittedAt = e.now()
	e.observer.OnDocumentEvent(event)
}

func (e emitter) phase(phase Phase) {
	if e.observer != nil {
		e.observer.OnPhase(phase)
	}
}
