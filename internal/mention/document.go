package mention

// Document is one unit of evaluation.
//
// Source is the raw document text; gold offsets point into it. Text is the
// plain text handed to annotators, and Offsets maps each rune index of Text to
// the rune index of the same character in Source.
type Document struct {
	ID       string
	Source   string
	Text     string
	Offsets  []int
	Mentions []Mention
}

// Clone returns a copy whose mention slice does not alias the original.
func (d Document) Clone() Document {
	out := d
	if d.Mentions != nil {
		out.Mentions = make([]Mention, len(d.Mentions))
		copy(out.Mentions, d.Mentions)
	}
	return out
}

// WithMentions returns a copy of the document carrying mentions.
func (d Document) WithMentions(mentions []Mention) Document {
	d.Mentions = mentions
	return d
}

// TextSpan returns the plain-text runes in [start, end), clamped to the text.
func (d Document) TextSpan(start, end int) string {
	return runeSlice(d.Text, start, end)
}

// SourceSpan returns the source runes in [start, end), clamped to the source.
func (d Document) SourceSpan(start, end int) string {
	return runeSlice(d.Source, start, end)
}

func runeSlice(s string, start, end int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
