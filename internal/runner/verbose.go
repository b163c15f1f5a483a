package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const verbosePrefix = "[verbose]"

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiGray   = "\x1b[90m"
	ansiGreen  = "\x1b[32m"
	ansiRed    = "\x1b[31m"
	ansiBlue   = "\x1b[34m"
	ansiYellow = "\x1b[33m"
)

type verboseStyle int

const (
	styleDefault verboseStyle = iota
	styleDocument
	styleMetrics
	styleWarning
	styleError
)

// logVerbose writes one verbose line to the console writer, styled when it is
// a terminal, and an unstyled copy to the log writer.
func logVerbose(enabled bool, writer io.Writer, logWriter io.Writer, noColor bool, style verboseStyle, format string, args ...any) {
	if !enabled {
		return
	}
	line := fmt.Sprintf(format, args...)
	if writer != nil {
		palette := paletteFor(writer, noColor)
		fmt.Fprintf(writer, "%s %s\n", palette.prefix(verbosePrefix), palette.apply(style, line))
	}
	if logWriter != nil {
		fmt.Fprintf(logWriter, "%s %s\n", verbosePrefix, line)
	}
}

type verbosePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) verbosePalette {
	if noColor {
		return verbosePalette{enabled: false}
	}
	return verbosePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if locked, ok := writer.(*lockedWriter); ok {
		return shouldUseStyling(locked.w)
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p verbosePalette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p verbosePalette) apply(style verboseStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleDocument:
		return ansiBold + ansiBlue + text + ansiReset
	case styleMetrics:
		return ansiBold + ansiGreen + text + ansiReset
	case styleWarning:
		return ansiYellow + text + ansiReset
	case styleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}

// lockedWriter serializes writes to an underlying writer. Writers returned by
// one wrapVerboseWriters call share a mutex.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// wrapVerboseWriters returns concurrency-safe writers when workers > 1.
func wrapVerboseWriters(workers int, verboseWriter, verboseLogWriter io.Writer) (io.Writer, io.Writer) {
	if workers <= 1 {
		return verboseWriter, verboseLogWriter
	}
	mu := &sync.Mutex{}
	if verboseWriter != nil {
		verboseWriter = &lockedWriter{mu: mu, w: verboseWriter}
	}
	if verboseLogWriter != nil {
		verboseLogWriter = &lockedWriter{mu: mu, w: verboseLogWriter}
	}
	return verboseWriter, verboseLogWriter
}
