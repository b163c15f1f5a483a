package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	uiAuto  = "auto"
	uiLive  = "live"
	uiPlain = "plain"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode decides between the live document table and plain output.
// Verbose runs always print plain lines so they can be followed in logs.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiAuto
	}
	switch normalized {
	case uiAuto, uiPlain:
	case uiLive:
		if verbose {
			return uiModeDecision{warning: "Live UI is disabled with --verbose; using plain output."}, nil
		}
		if !isTerminal(stdout) {
			return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain output."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	if normalized == uiPlain || verbose {
		return uiModeDecision{}, nil
	}
	return uiModeDecision{useLive: isTerminal(stdout)}, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	switch w := stdout.(type) {
	case *os.File:
		return term.IsTerminal(int(w.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(w.Fd()))
	default:
		return false
	}
}
