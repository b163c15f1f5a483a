package postprocess

import (
	"strings"

	"edleval/internal/mention"
)

const personType = "PER"

// FixPersonTitles gives a one-token PER mention the identity of the first
// longer PER mention in the document that contains it, e.g. "Obama" takes the
// identity of "Barack Obama". For scripts written without spaces the longer
// surface only has to contain the shorter one.
func FixPersonTitles(doc mention.Document) mention.Document {
	out := doc.Clone()
	for i, m := range out.Mentions {
		if m.Type != personType {
			continue
		}
		short := mention.NormalizeSurface(m.Surface)
		if short == "" || strings.Contains(short, " ") {
			continue
		}
		for _, other := range doc.Mentions {
			if other.Type != personType || other.PredictedID == "" {
				continue
			}
			if coversName(mention.NormalizeSurface(other.Surface), short) {
				out.Mentions[i].PredictedID = other.PredictedID
				break
			}
		}
	}
	return out
}

func coversName(long, short string) bool {
	if len([]rune(long)) <= len([]rune(short)) {
		return false
	}
	if !strings.Contains(long, " ") {
		return strings.Contains(long, short)
	}
	for _, token := range strings.Fields(long) {
		if token == short {
			return true
		}
	}
	return false
}
