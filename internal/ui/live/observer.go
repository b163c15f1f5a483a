package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"edleval/internal/runner"
)

// Controller runs the live UI and implements runner.RunObserver.
type Controller struct {
	events      chan Event
	program     *tea.Program
	done        chan struct{}
	interrupted chan struct{}
	closeOnce   sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:      events,
		program:     program,
		done:        make(chan struct{}),
		interrupted: make(chan struct{}),
	}
	go func() {
		final, _ := program.Run()
		if model, ok := final.(Model); ok && model.interrupted {
			close(controller.interrupted)
		}
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// Interrupted is closed when the user quits the UI with ctrl+c. The terminal
// is in raw mode while the UI runs, so no SIGINT reaches the process.
func (c *Controller) Interrupted() <-chan struct{} {
	return c.interrupted
}

// OnRunStart forwards run start events to the UI.
func (c *Controller) OnRunStart(runID string, language string, documents int) {
	c.send(Event{Kind: EventRunStart, RunID: runID, Language: language, Documents: documents})
}

// OnDocumentEvent forwards document status updates to the UI. Queued events
// are implied by the run start and are not forwarded.
func (c *Controller) OnDocumentEvent(event runner.DocumentEvent) {
	if event.Type == runner.DocumentQueued {
		return
	}
	c.send(Event{Kind: EventDocument, Document: event})
}

// OnPhase forwards phase changes to the UI.
func (c *Controller) OnPhase(phase runner.Phase) {
	c.send(Event{Kind: EventPhase, Phase: phase})
}

// OnRunEnd forwards run completion events to the UI and closes it.
func (c *Controller) OnRunEnd(results runner.Results) {
	c.send(Event{Kind: EventRunEnd, Report: results.Report})
	c.Close()
}

// send enqueues an event, giving up once the UI has exited.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	case <-c.done:
	}
}
