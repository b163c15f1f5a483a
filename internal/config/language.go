package config

import (
	"errors"
	"fmt"
	"strings"
)

// Language selects the corpus and gold sources for a run.
type Language string

const (
	Chinese Language = "zh"
	Spanish Language = "es"
)

// ErrUnknownLanguage is returned for language codes the harness has no
// loaders for.
var ErrUnknownLanguage = errors.New("unknown language")

// ParseLanguage validates a language code.
func ParseLanguage(value string) (Language, error) {
	switch Language(strings.TrimSpace(value)) {
	case Chinese:
		return Chinese, nil
	case Spanish:
		return Spanish, nil
	default:
		return "", fmt.Errorf("%w: %q (expected zh|es)", ErrUnknownLanguage, value)
	}
}

// DefaultDocIDMarker returns the tag TAC uses in document ids for each language.
func DefaultDocIDMarker(lang Language) string {
	switch lang {
	case Chinese:
		return "CMN"
	case Spanish:
		return "SPA"
	default:
		return ""
	}
}

// defaultDocLimit caps the Spanish evaluation corpus; Chinese is unbounded.
func defaultDocLimit(lang Language) int {
	if lang == Spanish {
		return 10000
	}
	return 0
}
