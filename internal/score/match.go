// Package score aligns predicted mentions with gold mentions and turns the
// alignment into micro-averaged precision, recall and F1.
package score

import "edleval/internal/mention"

// Verdict records how one predicted mention fared against the gold subset.
type Verdict struct {
	Predicted mention.Mention `json:"predicted"`

	// GoldIndex is the position of the matched gold mention in the document's
	// gold subset, or -1 when nothing shares the span.
	GoldIndex int    `json:"gold_index"`
	GoldID    string `json:"gold_id,omitempty"`
	GoldType  string `json:"gold_type,omitempty"`

	Span bool `json:"span"`
	Type bool `json:"type"`
	Link bool `json:"link"`
}

// Match compares a predicted mention against a document's gold mentions.
//
// The first gold mention with exactly the same span wins, even when a later
// one shares the span and would also agree on type or identity. Type is only
// compared on a span match and identity only on a type match.
func Match(pred mention.Mention, gold []mention.Mention) Verdict {
	verdict := Verdict{Predicted: pred, GoldIndex: -1}
	for i, gm := range gold {
		if !pred.SameSpan(gm) {
			continue
		}
		verdict.GoldIndex = i
		verdict.GoldID = gm.GoldID
		verdict.GoldType = gm.Type
		verdict.Span = true
		if pred.Type == gm.Type {
			verdict.Type = true
			verdict.Link = linked(pred.PredictedID, gm.GoldID)
		}
		break
	}
	return verdict
}

// linked compares identities: NIL matches any NIL regardless of cluster
// suffix, everything else needs exact equality.
func linked(predictedID, goldID string) bool {
	if mention.IsNIL(predictedID) {
		return mention.IsNIL(goldID)
	}
	return predictedID == goldID
}

// MatchDocument matches every predicted mention and tallies the counts for
// one document.
func MatchDocument(predicted, gold []mention.Mention) (Counts, []Verdict) {
	counts := Counts{
		Predicted: len(predicted),
		Gold:      len(gold),
	}
	verdicts := make([]Verdict, 0, len(predicted))
	for _, pred := range predicted {
		verdict := Match(pred, gold)
		counts = counts.tally(verdict)
		verdicts = append(verdicts, verdict)
	}
	return counts, verdicts
}
