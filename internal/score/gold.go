package score

import (
	"sort"

	"edleval/internal/mention"
)

// GoldSet indexes gold mentions by document while keeping their input order.
type GoldSet struct {
	byDoc map[string][]mention.Mention
	total int
}

// NewGoldSet groups gold mentions by document id.
func NewGoldSet(gold []mention.Mention) GoldSet {
	byDoc := make(map[string][]mention.Mention)
	for _, gm := range gold {
		byDoc[gm.DocID] = append(byDoc[gm.DocID], gm)
	}
	return GoldSet{byDoc: byDoc, total: len(gold)}
}

// ForDocument returns the gold subset for one document, possibly empty.
func (g GoldSet) ForDocument(docID string) []mention.Mention {
	return g.byDoc[docID]
}

// Len returns the number of gold mentions across all documents.
func (g GoldSet) Len() int {
	return g.total
}

// DocIDs returns the documents that have gold mentions, sorted.
func (g GoldSet) DocIDs() []string {
	ids := make([]string, 0, len(g.byDoc))
	for id := range g.byDoc {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DuplicateSpan describes a span carried by more than one gold mention in a
// document. Only the first of them can ever be matched.
type DuplicateSpan struct {
	DocID string `json:"doc_id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Count int    `json:"count"`
}

// DuplicateSpans lists repeated gold spans in document then first-seen order.
func (g GoldSet) DuplicateSpans() []DuplicateSpan {
	var out []DuplicateSpan
	for _, docID := range g.DocIDs() {
		out = append(out, DuplicateSpans(g.byDoc[docID])...)
	}
	return out
}

// DuplicateSpans lists repeated spans within one document's gold mentions.
func DuplicateSpans(gold []mention.Mention) []DuplicateSpan {
	type key struct {
		doc        string
		start, end int
	}
	counts := make(map[key]int)
	order := make([]key, 0)
	for _, gm := range gold {
		k := key{doc: gm.DocID, start: gm.Start, end: gm.End}
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	var out []DuplicateSpan
	for _, k := range order {
		if counts[k] > 1 {
			out = append(out, DuplicateSpan{DocID: k.doc, Start: k.start, End: k.end, Count: counts[k]})
		}
	}
	return out
}
