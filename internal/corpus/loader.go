// Package corpus loads evaluation documents and gold mentions.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"edleval/internal/config"
	"edleval/internal/mention"
)

// Loader supplies the documents and gold mentions for a language. Every
// document id must use the same key as the gold mentions that belong to it.
type Loader interface {
	LoadDocuments(ctx context.Context, lang config.Language, limit int) ([]mention.Document, error)
	LoadGoldMentions(ctx context.Context, lang config.Language) ([]mention.Mention, error)
}

// TACReader reads TAC KBP EDL source files and gold tables.
type TACReader struct {
	cfg config.Config
}

// NewTACReader builds a reader over the configured language sources.
func NewTACReader(cfg config.Config) *TACReader {
	return &TACReader{cfg: cfg}
}

func (r *TACReader) source(lang config.Language) (config.LanguageConfig, error) {
	source, ok := r.cfg.Source(lang)
	if !ok {
		return config.LanguageConfig{}, fmt.Errorf("language %q is not configured", lang)
	}
	return source, nil
}

// LoadDocuments reads up to limit XML documents (limit <= 0 reads all) in
// file name order. The document id is the file name without ".xml".
func (r *TACReader) LoadDocuments(ctx context.Context, lang config.Language, limit int) ([]mention.Document, error) {
	source, err := r.source(lang)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(source.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	docs := make([]mention.Document, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(source.DocumentsDir, name))
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", name, err)
		}
		docs = append(docs, NewDocument(strings.TrimSuffix(name, ".xml"), string(data)))
	}
	return docs, nil
}

// LoadGoldMentions reads the gold table filtered to the language and the
// configured mention kinds.
func (r *TACReader) LoadGoldMentions(ctx context.Context, lang config.Language) ([]mention.Mention, error) {
	source, err := r.source(lang)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(source.GoldFile)
	if err != nil {
		return nil, fmt.Errorf("open gold: %w", err)
	}
	defer file.Close()
	return ParseGold(file, GoldFilter{DocIDMarker: source.DocIDMarker, Kinds: source.MentionKinds})
}

// NewDocument builds a document from raw source text.
func NewDocument(id, source string) mention.Document {
	text, offsets := StripMarkup(source)
	return mention.Document{
		ID:      id,
		Source:  source,
		Text:    text,
		Offsets: offsets,
	}
}
