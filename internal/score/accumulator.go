package score

import "edleval/internal/mention"

// Accumulator folds per-document match counts into corpus totals. The zero
// value is ready to use; it is not safe for concurrent use.
type Accumulator struct {
	counts    Counts
	documents int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Evaluate scores one document against its gold subset and adds the result to
// the running totals. Evaluating the same document twice counts it twice.
func (a *Accumulator) Evaluate(doc mention.Document, gold GoldSet) []Verdict {
	counts, verdicts := MatchDocument(doc.Mentions, gold.ForDocument(doc.ID))
	a.Add(counts)
	return verdicts
}

// Add folds precomputed document counts into the totals.
func (a *Accumulator) Add(counts Counts) {
	a.counts = a.counts.Add(counts)
	a.documents++
}

// Counts returns the current totals.
func (a *Accumulator) Counts() Counts {
	return a.counts
}

// Documents returns how many documents have been evaluated.
func (a *Accumulator) Documents() int {
	return a.documents
}

// Report computes metrics from the current totals.
func (a *Accumulator) Report() Report {
	return a.counts.Report()
}
