package runner

import (
	"io"
	"time"

	"edleval/internal/annotate"
	"edleval/internal/config"
	"edleval/internal/corpus"
)

// RunDependencies allows injecting collaborators and clocks for a run. Nil
// fields fall back to the file-backed implementations named by the config.
type RunDependencies struct {
	Loader corpus.Loader
	Tagger annotate.Annotator
	Linker annotate.Annotator
	RunID  func() (string, error)
	Now    func() time.Time
}

// RunParams configures a run invocation.
type RunParams struct {
	Language         config.Language
	OutputDir        string
	Workers          int
	Verbose          bool
	VerboseWriter    io.Writer
	VerboseLogWriter io.Writer
	NoColor          bool
	Observer         RunObserver
	Deps             RunDependencies
}

// logger bundles the verbose settings of a run.
type logger struct {
	enabled bool
	writer  io.Writer
	log     io.Writer
	noColor bool
}

func (l logger) printf(style verboseStyle, format string, args ...any) {
	logVerbose(l.enabled, l.writer, l.log, l.noColor, style, format, args...)
}
