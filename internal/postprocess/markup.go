package postprocess

import (
	"regexp"
	"unicode/utf8"

	"edleval/internal/mention"
)

var (
	postAuthor = regexp.MustCompile(`<post\b[^>]*?\bauthor="([^"]+)"`)
	quoteTag   = regexp.MustCompile(`<(/?)quote\b[^>]*>`)
)

// runeOffset converts a byte offset into s to a rune offset.
func runeOffset(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}

// AddPostAuthors adds a PER mention for every post author attribute in the
// source. The author takes the identity of an existing mention with the same
// surface, or NIL. Spans that already carry a mention are skipped.
func AddPostAuthors(doc mention.Document) mention.Document {
	out := doc.Clone()
	ids := make(map[string]string)
	spans := make(map[[2]int]bool)
	for _, m := range doc.Mentions {
		key := mention.NormalizeSurface(m.Surface)
		if _, ok := ids[key]; !ok && m.PredictedID != "" {
			ids[key] = m.PredictedID
		}
		spans[[2]int{m.Start, m.End}] = true
	}
	for _, match := range postAuthor.FindAllStringSubmatchIndex(doc.Source, -1) {
		start := runeOffset(doc.Source, match[2])
		end := runeOffset(doc.Source, match[3])
		if spans[[2]int{start, end}] {
			continue
		}
		surface := doc.Source[match[2]:match[3]]
		id, ok := ids[mention.NormalizeSurface(surface)]
		if !ok {
			id = mention.NIL
		}
		out.Mentions = append(out.Mentions, mention.Mention{
			DocID:       doc.ID,
			Start:       start,
			End:         end,
			Surface:     surface,
			Type:        "PER",
			PredictedID: id,
		})
		spans[[2]int{start, end}] = true
	}
	return out
}

// QuoteSpans returns the source rune ranges covered by quote elements,
// outermost only.
func QuoteSpans(source string) [][2]int {
	var spans [][2]int
	depth := 0
	open := 0
	for _, match := range quoteTag.FindAllStringSubmatchIndex(source, -1) {
		closing := match[3] > match[2]
		switch {
		case !closing:
			if depth == 0 {
				open = runeOffset(source, match[0])
			}
			depth++
		case depth > 0:
			depth--
			if depth == 0 {
				spans = append(spans, [2]int{open, runeOffset(source, match[1])})
			}
		}
	}
	if depth > 0 {
		spans = append(spans, [2]int{open, utf8.RuneCountInString(source)})
	}
	return spans
}

// RemoveQuotedMentions drops mentions that start inside a quote element.
// Offsets must already be in source space.
func RemoveQuotedMentions(doc mention.Document) mention.Document {
	spans := QuoteSpans(doc.Source)
	if len(spans) == 0 {
		return doc.Clone()
	}
	kept := make([]mention.Mention, 0, len(doc.Mentions))
	for _, m := range doc.Mentions {
		if insideAny(m.Start, spans) {
			continue
		}
		kept = append(kept, m)
	}
	return doc.WithMentions(kept)
}

func insideAny(offset int, spans [][2]int) bool {
	for _, span := range spans {
		if offset >= span[0] && offset < span[1] {
			return true
		}
	}
	return false
}
