// Package mention holds the entity mention and document values shared by the
// loaders, annotators, post-processing stages and the scorer.
package mention

import (
	"fmt"
	"strings"
)

// NIL is the identity assigned to mentions with no knowledge-base entry.
// Clustered NIL identities carry a suffix, e.g. "NIL0003" or "NIL-3".
const NIL = "NIL"

// IsNIL reports whether an identity is NIL, ignoring any cluster suffix.
func IsNIL(id string) bool {
	return strings.HasPrefix(id, NIL)
}

// Mention is one entity mention, predicted or gold.
type Mention struct {
	DocID string `json:"doc_id"`

	// Start and End are rune offsets, half-open: [Start, End).
	Start int `json:"start"`
	End   int `json:"end"`

	Surface     string `json:"surface,omitempty"`
	Type        string `json:"type"`
	PredictedID string `json:"predicted_id,omitempty"`
	GoldID      string `json:"gold_id,omitempty"`

	// Kind is NAM or NOM; only gold mentions carry it.
	Kind string `json:"kind,omitempty"`
}

// Validate checks the offset and document invariants.
func (m Mention) Validate() error {
	if strings.TrimSpace(m.DocID) == "" {
		return fmt.Errorf("mention: doc id is required")
	}
	if m.Start < 0 {
		return fmt.Errorf("mention %s: negative start offset %d", m.DocID, m.Start)
	}
	if m.Start >= m.End {
		return fmt.Errorf("mention %s: start %d must be before end %d", m.DocID, m.Start, m.End)
	}
	return nil
}

// SameSpan reports whether both mentions cover exactly the same offsets.
func (m Mention) SameSpan(other Mention) bool {
	return m.Start == other.Start && m.End == other.End
}

func (m Mention) String() string {
	id := m.PredictedID
	if id == "" {
		id = m.GoldID
	}
	return fmt.Sprintf("%s[%d,%d) %s %s", m.DocID, m.Start, m.End, m.Type, id)
}
