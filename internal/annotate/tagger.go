package annotate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"edleval/internal/mention"
)

// ReplayTagger replays precomputed NER output. Each line of its input is
//
//	docId<TAB>start<TAB>end<TAB>type
//
// with plain-text rune offsets and an exclusive end.
type ReplayTagger struct {
	byDoc map[string][]mention.Mention
}

// LoadReplayTagger reads NER output from path.
func LoadReplayTagger(path string) (*ReplayTagger, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ner output: %w", err)
	}
	defer file.Close()
	return ParseReplayTagger(file)
}

// ParseReplayTagger reads NER output from r.
func ParseReplayTagger(r io.Reader) (*ReplayTagger, error) {
	scanner := bufio.NewScanner(r)
	tagger := &ReplayTagger{byDoc: make(map[string][]mention.Mention)}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			return nil, fmt.Errorf("ner line %d: expected 4 columns, got %d", lineNo, len(fields))
		}
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ner line %d: start: %w", lineNo, err)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("ner line %d: end: %w", lineNo, err)
		}
		m := mention.Mention{DocID: fields[0], Start: start, End: end, Type: strings.TrimSpace(fields[3])}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("ner line %d: %w", lineNo, err)
		}
		tagger.byDoc[m.DocID] = append(tagger.byDoc[m.DocID], m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ner output: %w", err)
	}
	return tagger, nil
}

// Annotate appends the recorded mentions for the document, filling surfaces
// from the plain text. Mentions beyond the end of the text are dropped.
func (t *ReplayTagger) Annotate(ctx context.Context, doc mention.Document) (mention.Document, error) {
	if err := ctx.Err(); err != nil {
		return doc, err
	}
	out := doc.Clone()
	textLen := len([]rune(doc.Text))
	for _, m := range t.byDoc[doc.ID] {
		if m.End > textLen {
			continue
		}
		m.Surface = doc.TextSpan(m.Start, m.End)
		out.Mentions = append(out.Mentions, m)
	}
	return out, nil
}
