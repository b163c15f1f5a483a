package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"edleval/internal/mention"
)

// GoldFilter selects the gold rows that belong to one evaluation.
type GoldFilter struct {
	// DocIDMarker keeps rows whose document id contains it; empty keeps all.
	DocIDMarker string
	// Kinds keeps rows whose mention kind is listed; empty keeps all.
	Kinds []string
}

func (f GoldFilter) keep(m mention.Mention) bool {
	if f.DocIDMarker != "" && !strings.Contains(m.DocID, f.DocIDMarker) {
		return false
	}
	if len(f.Kinds) == 0 {
		return true
	}
	for _, kind := range f.Kinds {
		if strings.EqualFold(strings.TrimSpace(kind), m.Kind) {
			return true
		}
	}
	return false
}

const goldMinColumns = 7

// ParseGold reads TAC EDL gold annotations:
//
//	runId<TAB>mentionId<TAB>mention<TAB>docId:start-end<TAB>kbId<TAB>type<TAB>kind[<TAB>confidence]
//
// The end offset on disk is inclusive; returned mentions use exclusive ends.
func ParseGold(r io.Reader, filter GoldFilter) ([]mention.Mention, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	var out []mention.Mention
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := parseGoldLine(line)
		if err != nil {
			return nil, fmt.Errorf("gold line %d: %w", lineNo, err)
		}
		if filter.keep(m) {
			out = append(out, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gold: %w", err)
	}
	return out, nil
}

func parseGoldLine(line string) (mention.Mention, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < goldMinColumns {
		return mention.Mention{}, fmt.Errorf("expected at least %d columns, got %d", goldMinColumns, len(fields))
	}
	docID, start, end, err := parseExtent(fields[3])
	if err != nil {
		return mention.Mention{}, err
	}
	m := mention.Mention{
		DocID:   docID,
		Start:   start,
		End:     end,
		Surface: fields[2],
		GoldID:  strings.TrimSpace(fields[4]),
		Type:    strings.TrimSpace(fields[5]),
		Kind:    strings.TrimSpace(fields[6]),
	}
	if err := m.Validate(); err != nil {
		return mention.Mention{}, err
	}
	return m, nil
}

// parseExtent splits "docId:start-end" with an inclusive end.
func parseExtent(value string) (string, int, int, error) {
	colon := strings.LastIndexByte(value, ':')
	if colon <= 0 {
		return "", 0, 0, fmt.Errorf("extent %q: missing document id", value)
	}
	docID, span := value[:colon], value[colon+1:]
	dash := strings.IndexByte(span, '-')
	if dash <= 0 {
		return "", 0, 0, fmt.Errorf("extent %q: missing offsets", value)
	}
	start, err := strconv.Atoi(span[:dash])
	if err != nil {
		return "", 0, 0, fmt.Errorf("extent %q: start: %w", value, err)
	}
	last, err := strconv.Atoi(span[dash+1:])
	if err != nil {
		return "", 0, 0, fmt.Errorf("extent %q: end: %w", value, err)
	}
	return docID, start, last + 1, nil
}
