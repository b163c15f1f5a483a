package postprocess

import (
	"fmt"

	"edleval/internal/mention"
)

// ClusterBySurface makes mentions with the same normalized surface agree
// within a document: NIL mentions take the first real identity seen for their
// surface. Mentions that already carry a real identity keep it.
func ClusterBySurface(doc mention.Document) mention.Document {
	out := doc.Clone()
	linked := make(map[string]string)
	for _, m := range doc.Mentions {
		key := mention.NormalizeSurface(m.Surface)
		if _, ok := linked[key]; ok || m.PredictedID == "" || mention.IsNIL(m.PredictedID) {
			continue
		}
		linked[key] = m.PredictedID
	}
	for i, m := range out.Mentions {
		if !mention.IsNIL(m.PredictedID) {
			continue
		}
		if id, ok := linked[mention.NormalizeSurface(m.Surface)]; ok {
			out.Mentions[i].PredictedID = id
		}
	}
	return out
}

// FormatNILID renders the n-th NIL cluster identity.
func FormatNILID(n int) string {
	return fmt.Sprintf("%s%05d", mention.NIL, n)
}

// ClusterNIL assigns NIL cluster identities across the whole corpus. NIL
// mentions are grouped by normalized surface; a group with at least minSize
// mentions shares one identity; smaller groups get one identity per document
// and surface.
// Identities are numbered in first-seen order over documents then mentions.
func ClusterNIL(docs []mention.Document, minSize int) []mention.Document {
	type docSurface struct {
		doc     int
		surface string
	}
	sizes := make(map[string]int)
	for _, doc := range docs {
		for _, m := range doc.Mentions {
			if mention.IsNIL(m.PredictedID) {
				sizes[mention.NormalizeSurface(m.Surface)]++
			}
		}
	}

	out := make([]mention.Document, len(docs))
	corpusIDs := make(map[string]string)
	localIDs := make(map[docSurface]string)
	next := 0
	assign := func() string {
		next++
		return FormatNILID(next)
	}
	for d, doc := range docs {
		out[d] = doc.Clone()
		for i, m := range out[d].Mentions {
			if !mention.IsNIL(m.PredictedID) {
				continue
			}
			key := mention.NormalizeSurface(m.Surface)
			var id string
			if sizes[key] >= minSize {
				if id = corpusIDs[key]; id == "" {
					id = assign()
					corpusIDs[key] = id
				}
			} else {
				local := docSurface{doc: d, surface: key}
				if id = localIDs[local]; id == "" {
					id = assign()
					localIDs[local] = id
				}
			}
			out[d].Mentions[i].PredictedID = id
		}
	}
	return out
}
