package annotate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"edleval/internal/mention"
)

// DictionaryLinker links mentions by exact lookup of their normalized
// surface in a title table:
//
//	surface<TAB>kbId
//
// The first entry for a surface wins. Unknown surfaces are linked to NIL.
type DictionaryLinker struct {
	titles map[string]string
}

// NewDictionaryLinker builds a linker from surface to id pairs.
func NewDictionaryLinker(titles map[string]string) *DictionaryLinker {
	normalized := make(map[string]string, len(titles))
	for surface, id := range titles {
		key := mention.NormalizeSurface(surface)
		if _, exists := normalized[key]; !exists {
			normalized[key] = id
		}
	}
	return &DictionaryLinker{titles: normalized}
}

// LoadDictionaryLinker reads a title table from path. An empty path yields a
// linker that assigns NIL to everything.
func LoadDictionaryLinker(path string) (*DictionaryLinker, error) {
	if strings.TrimSpace(path) == "" {
		return &DictionaryLinker{titles: map[string]string{}}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kb dictionary: %w", err)
	}
	defer file.Close()
	return ParseDictionaryLinker(file)
}

// ParseDictionaryLinker reads a title table from r.
func ParseDictionaryLinker(r io.Reader) (*DictionaryLinker, error) {
	scanner := bufio.NewScanner(r)
	linker := &DictionaryLinker{titles: make(map[string]string)}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		surface, id, ok := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("kb dictionary line %d: expected surface and id", lineNo)
		}
		key := mention.NormalizeSurface(surface)
		if _, exists := linker.titles[key]; !exists {
			linker.titles[key] = id
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read kb dictionary: %w", err)
	}
	return linker, nil
}

// Lookup returns the id for a surface, or NIL.
func (l *DictionaryLinker) Lookup(surface string) string {
	if id, ok := l.titles[mention.NormalizeSurface(surface)]; ok {
		return id
	}
	return mention.NIL
}

// Annotate assigns an identity to every mention.
func (l *DictionaryLinker) Annotate(ctx context.Context, doc mention.Document) (mention.Document, error) {
	if err := ctx.Err(); err != nil {
		return doc, err
	}
	out := doc.Clone()
	for i := range out.Mentions {
		out.Mentions[i].PredictedID = l.Lookup(out.Mentions[i].Surface)
	}
	return out, nil
}
