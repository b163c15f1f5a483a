// Package postprocess holds the rule-based stages that run between and after
// the annotators. Each stage returns a new document and leaves its input
// untouched.
package postprocess

import (
	"strings"

	"edleval/internal/mention"
)

// CleanSurfaces drops mentions whose surface spans an XML tag. Character
// references such as &amp; stay: gold offsets cover them verbatim.
func CleanSurfaces(doc mention.Document) mention.Document {
	kept := make([]mention.Mention, 0, len(doc.Mentions))
	for _, m := range doc.Mentions {
		if strings.ContainsAny(m.Surface, "<>") {
			continue
		}
		kept = append(kept, m)
	}
	return doc.WithMentions(kept)
}
