package postprocess

import "edleval/internal/mention"

// MapToSource moves mention offsets from plain-text space to source space.
// Documents without an offset table are returned unchanged; mentions that
// fall outside the table are dropped.
func MapToSource(doc mention.Document) mention.Document {
	if doc.Offsets == nil {
		return doc.Clone()
	}
	kept := make([]mention.Mention, 0, len(doc.Mentions))
	for _, m := range doc.Mentions {
		if m.Start < 0 || m.End > len(doc.Offsets) || m.Start >= m.End {
			continue
		}
		m.Start, m.End = doc.Offsets[m.Start], doc.Offsets[m.End-1]+1
		kept = append(kept, m)
	}
	return doc.WithMentions(kept)
}
